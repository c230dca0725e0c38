package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ActivityAction string

const (
	ActivityCreated ActivityAction = "created"
	ActivityUpdated ActivityAction = "updated"
)

// ActivityLog is an append-only audit record for a report. Entries are never
// mutated or deleted.
type ActivityLog struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key;" json:"id"`
	EntityType  ReportKind     `gorm:"type:varchar(20);not null;index:idx_activity_entity" json:"entity_type"`
	EntityID    uuid.UUID      `gorm:"type:uuid;not null;index:idx_activity_entity" json:"entity_id"`
	Action      ActivityAction `gorm:"type:varchar(20);not null" json:"action"`
	Details     string         `gorm:"type:text" json:"details"`
	PerformedBy *string        `json:"performed_by"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (al *ActivityLog) BeforeCreate(tx *gorm.DB) error {
	if al.ID == uuid.Nil {
		al.ID = uuid.New()
	}
	return nil
}
