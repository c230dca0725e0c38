package repositories

import (
	"fmt"

	"barangay-mancruz-backend/db/models"

	"gorm.io/gorm"
)

type ActivityLogRepository interface {
	AppendActivity(entry *models.ActivityLog) error
	ListForReport(ref models.ReportRef) ([]models.ActivityLog, error)
}

type activityLogRepository struct {
	db *gorm.DB
}

// NewActivityLogRepository initializes a new activity log repository
func NewActivityLogRepository(db *gorm.DB) ActivityLogRepository {
	return &activityLogRepository{db: db}
}

// AppendActivity inserts one audit entry. Entries are append-only; there is
// deliberately no update or delete here.
func (ar *activityLogRepository) AppendActivity(entry *models.ActivityLog) error {
	if err := ar.db.Create(entry).Error; err != nil {
		return fmt.Errorf("failed to append activity log: %w", err)
	}
	return nil
}

func (ar *activityLogRepository) ListForReport(ref models.ReportRef) ([]models.ActivityLog, error) {
	var entries []models.ActivityLog
	err := ar.db.
		Where("entity_type = ? AND entity_id = ?", ref.Kind, ref.ID).
		Order("created_at DESC").
		Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list activity logs: %w", err)
	}
	return entries, nil
}
