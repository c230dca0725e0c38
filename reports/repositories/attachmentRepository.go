package repositories

import (
	"fmt"

	"barangay-mancruz-backend/db/models"

	"gorm.io/gorm"
)

type AttachmentRepository interface {
	CreateAttachment(attachment *models.FileAttachment) error
	ListForReport(ref models.ReportRef) ([]models.FileAttachment, error)
	DeleteForReport(tx *gorm.DB, ref models.ReportRef) error
}

type attachmentRepository struct {
	db *gorm.DB
}

// NewAttachmentRepository initializes a new attachment repository
func NewAttachmentRepository(db *gorm.DB) AttachmentRepository {
	return &attachmentRepository{db: db}
}

func (ar *attachmentRepository) CreateAttachment(attachment *models.FileAttachment) error {
	if err := ar.db.Create(attachment).Error; err != nil {
		return fmt.Errorf("failed to create attachment record: %w", err)
	}
	return nil
}

// ListForReport returns a report's attachments newest first.
func (ar *attachmentRepository) ListForReport(ref models.ReportRef) ([]models.FileAttachment, error) {
	var attachments []models.FileAttachment
	err := ar.db.
		Where("entity_type = ? AND entity_id = ?", ref.Kind, ref.ID).
		Order("uploaded_at DESC").
		Find(&attachments).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list attachments: %w", err)
	}
	return attachments, nil
}

// DeleteForReport removes a report's attachment records inside the caller's
// transaction. Reports own their attachments exclusively, so any future
// report deletion must cascade through here.
func (ar *attachmentRepository) DeleteForReport(tx *gorm.DB, ref models.ReportRef) error {
	err := tx.
		Where("entity_type = ? AND entity_id = ?", ref.Kind, ref.ID).
		Delete(&models.FileAttachment{}).Error
	if err != nil {
		return fmt.Errorf("failed to delete attachments: %w", err)
	}
	return nil
}
