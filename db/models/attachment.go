package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FileAttachment is uploaded evidence linked to one report of either variant
// through the (EntityType, EntityID) pair. A report exclusively owns its
// attachments.
type FileAttachment struct {
	ID         uuid.UUID  `gorm:"type:uuid;primary_key;" json:"id"`
	EntityType ReportKind `gorm:"type:varchar(20);not null;index:idx_attachment_entity" json:"entity_type"`
	EntityID   uuid.UUID  `gorm:"type:uuid;not null;index:idx_attachment_entity" json:"entity_id"`

	FileName string `gorm:"not null" json:"file_name"`
	FilePath string `gorm:"not null" json:"file_path"`
	FileURL  string `gorm:"not null" json:"file_url"`
	MimeType string `json:"mime_type"`
	FileSize int64  `gorm:"not null" json:"file_size"`
	IsImage  bool   `gorm:"default:true" json:"is_image"`

	UploadedAt time.Time `gorm:"autoCreateTime" json:"uploaded_at"`
}

func (fa *FileAttachment) BeforeCreate(tx *gorm.DB) error {
	if fa.ID == uuid.Nil {
		fa.ID = uuid.New()
	}
	return nil
}

// Ref returns the typed reference of the owning report.
func (fa *FileAttachment) Ref() ReportRef {
	return ReportRef{Kind: fa.EntityType, ID: fa.EntityID}
}
