package controllers

import (
	bleve_repositories "barangay-mancruz-backend/bleve/repositories"
	"barangay-mancruz-backend/reports/repositories"
	"barangay-mancruz-backend/utils"

	"github.com/hibiken/asynq"
)

// Attachment intake policy: the portal offers image_0..image_2, anything
// beyond that never reaches the linker.
const (
	maxAttachmentsPerReport = 3
	maxAttachmentSize       = 5 << 20 // 5 MiB
)

type ReportController struct {
	ComplaintRepo  repositories.ComplaintRepository
	IncidentRepo   repositories.IncidentRepository
	AttachmentRepo repositories.AttachmentRepository
	ActivityRepo   repositories.ActivityLogRepository
	FileStorage    utils.FileStorage
	AsynqClient    *asynq.Client
	BleveRepo      bleve_repositories.ReportIndexRepositoryInterface
}
