package routes

import (
	bleve_repositories "barangay-mancruz-backend/bleve/repositories"
	"barangay-mancruz-backend/middleware"
	"barangay-mancruz-backend/reports/controllers"
	"barangay-mancruz-backend/reports/repositories"
	"barangay-mancruz-backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/hibiken/asynq"
)

func ReportRouterInit(
	app *fiber.App,
	complaintRepository repositories.ComplaintRepository,
	incidentRepository repositories.IncidentRepository,
	attachmentRepository repositories.AttachmentRepository,
	activityRepository repositories.ActivityLogRepository,
	fileStorage utils.FileStorage,
	asynqClient *asynq.Client,
	bleveRepo bleve_repositories.ReportIndexRepositoryInterface,
) {
	reportController := &controllers.ReportController{
		ComplaintRepo:  complaintRepository,
		IncidentRepo:   incidentRepository,
		AttachmentRepo: attachmentRepository,
		ActivityRepo:   activityRepository,
		FileStorage:    fileStorage,
		AsynqClient:    asynqClient,
		BleveRepo:      bleveRepo,
	}

	api := app.Group("/api/v1")
	reports := api.Group("/reports")

	complaints := reports.Group("/complaints")
	complaints.Post("/", reportController.CreateComplaintController)
	complaints.Get("/", reportController.GetFilteredComplaintsController)
	complaints.Get("/export", reportController.ExportComplaintsController)
	complaints.Get("/:id", reportController.GetComplaintByIDController)
	complaints.Patch("/:id", reportController.UpdateComplaintController)

	incidents := reports.Group("/incidents")
	incidents.Post("/", reportController.CreateIncidentController)
	incidents.Get("/", reportController.GetFilteredIncidentsController)
	incidents.Get("/export", reportController.ExportIncidentsController)
	incidents.Get("/:id", reportController.GetIncidentByIDController)
	incidents.Patch("/:id", reportController.UpdateIncidentController)

	api.Get("/track/:referenceNumber", middleware.TrackingRateLimit(), reportController.TrackReportController)

	api.Get("/attachments", reportController.GetReportAttachmentsController)
	api.Get("/activity-logs", reportController.GetReportActivityController)
}
