package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type IncidentType string

const (
	AccidentIncident          IncidentType = "accident"
	CrimeIncident             IncidentType = "crime"
	FireIncident              IncidentType = "fire"
	FloodIncident             IncidentType = "flood"
	MedicalEmergencyIncident  IncidentType = "medical_emergency"
	PublicDisturbanceIncident IncidentType = "public_disturbance"
	OtherIncident             IncidentType = "other"
)

type IncidentStatus string

const (
	IncidentReported      IncidentStatus = "reported"
	IncidentInvestigating IncidentStatus = "investigating"
	IncidentResolved      IncidentStatus = "resolved"
	IncidentClosed        IncidentStatus = "closed"
)

// Incident is a resident incident report. Unlike complaints, anonymous
// incidents carry no sentinel name; all reporter fields are simply null.
type Incident struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;" json:"id"`
	ReferenceNumber string    `gorm:"uniqueIndex;not null" json:"reference_number"`

	ReporterName    *string `json:"reporter_name"`
	ReporterEmail   *string `json:"reporter_email"`
	ReporterPhone   *string `json:"reporter_phone"`
	ReporterAddress *string `json:"reporter_address"`

	IncidentType     IncidentType `gorm:"type:varchar(30);not null" json:"incident_type"`
	Title            string       `gorm:"not null" json:"title"`
	Description      string       `gorm:"type:text;not null" json:"description"`
	OtherDescription *string      `gorm:"type:text" json:"other_description"`

	Location string  `gorm:"not null" json:"location"`
	Purok    string  `gorm:"not null;index" json:"purok"`
	Landmark *string `json:"landmark"`

	// When the incident actually happened, as reported by the resident.
	// Distinct from CreatedAt, which is when it reached the system.
	IncidentDate time.Time `gorm:"not null" json:"incident_date"`

	IsAnonymous bool           `gorm:"default:false" json:"is_anonymous"`
	Status      IncidentStatus `gorm:"type:varchar(20);not null;index" json:"status"`

	AssignedTo  *string    `json:"assigned_to"`
	ActionTaken *string    `gorm:"type:text" json:"action_taken"`
	ResolvedAt  *time.Time `json:"resolved_at"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

var IncidentStatuses = []IncidentStatus{
	IncidentReported,
	IncidentInvestigating,
	IncidentResolved,
	IncidentClosed,
}

func (s IncidentStatus) Valid() bool {
	for _, known := range IncidentStatuses {
		if s == known {
			return true
		}
	}
	return false
}

func (i *Incident) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}
