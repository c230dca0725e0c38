package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ComplaintType string

const (
	NoiseComplaint          ComplaintType = "noise"
	GarbageComplaint        ComplaintType = "garbage"
	IllegalParkingComplaint ComplaintType = "illegal_parking"
	PublicSafetyComplaint   ComplaintType = "public_safety"
	InfrastructureComplaint ComplaintType = "infrastructure"
	OtherComplaint          ComplaintType = "other"
)

type ComplaintStatus string

const (
	ComplaintPending    ComplaintStatus = "pending"
	ComplaintInProgress ComplaintStatus = "in_progress"
	ComplaintResolved   ComplaintStatus = "resolved"
	ComplaintClosed     ComplaintStatus = "closed"
	ComplaintRejected   ComplaintStatus = "rejected"
)

// AnonymousName is stored in place of the complainant name when a complaint
// is submitted anonymously.
const AnonymousName = "[ANONYMOUS]"

// Complaint is a resident complaint filed with the barangay office.
type Complaint struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;" json:"id"`
	ReferenceNumber string    `gorm:"uniqueIndex;not null" json:"reference_number"`

	// Complainant identity. All of these read back redacted when IsAnonymous
	// is set, regardless of what the submission carried.
	ComplainantName    string  `json:"complainant_name"`
	ComplainantEmail   *string `json:"complainant_email"`
	ComplainantPhone   *string `json:"complainant_phone"`
	ComplainantAddress *string `json:"complainant_address"`

	ComplaintType    ComplaintType `gorm:"type:varchar(30);not null" json:"complaint_type"`
	Subject          string        `gorm:"not null" json:"subject"`
	Description      string        `gorm:"type:text;not null" json:"description"`
	OtherDescription *string       `gorm:"type:text" json:"other_description"`

	Location string  `gorm:"not null" json:"location"`
	Purok    string  `gorm:"not null;index" json:"purok"`
	Landmark *string `json:"landmark"`

	IsAnonymous bool            `gorm:"default:false" json:"is_anonymous"`
	Status      ComplaintStatus `gorm:"type:varchar(20);not null;index" json:"status"`

	AssignedTo      *string    `json:"assigned_to"`
	ResolutionNotes *string    `gorm:"type:text" json:"resolution_notes"`
	ResolvedAt      *time.Time `json:"resolved_at"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// ComplaintStatuses lists the full status vocabulary for complaints. Any
// status is reachable from any other; the engine only enforces membership.
var ComplaintStatuses = []ComplaintStatus{
	ComplaintPending,
	ComplaintInProgress,
	ComplaintResolved,
	ComplaintClosed,
	ComplaintRejected,
}

func (s ComplaintStatus) Valid() bool {
	for _, known := range ComplaintStatuses {
		if s == known {
			return true
		}
	}
	return false
}

func (c *Complaint) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
