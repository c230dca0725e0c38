package services

import (
	"time"

	"barangay-mancruz-backend/db/models"
)

// Write-time redaction. Identity fields of anonymous submissions are stripped
// before anything touches the store, so no read path can leak them later.
// These are pure functions.

func optional(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}

// BuildComplaint maps a validated submission to a storable complaint,
// applying the anonymity policy. Anonymous complaints keep the sentinel name;
// every other identity field is nulled.
func BuildComplaint(s ComplaintSubmission) models.Complaint {
	complaint := models.Complaint{
		ComplaintType:    models.ComplaintType(s.ComplaintType),
		Subject:          s.Subject,
		Description:      s.Description,
		OtherDescription: optional(s.OtherDescription),
		Location:         s.Location,
		Purok:            s.Purok,
		Landmark:         optional(s.Landmark),
		IsAnonymous:      s.IsAnonymous,
		Status:           models.ComplaintPending,
	}
	if s.ComplaintType == "" {
		complaint.ComplaintType = models.OtherComplaint
	}

	if s.IsAnonymous {
		complaint.ComplainantName = models.AnonymousName
	} else {
		complaint.ComplainantName = s.ComplainantName
		complaint.ComplainantEmail = optional(s.ComplainantEmail)
		complaint.ComplainantPhone = optional(s.ComplainantPhone)
		complaint.ComplainantAddress = optional(s.ComplainantAddress)
	}

	return complaint
}

// BuildIncident maps a validated submission to a storable incident. Anonymous
// incidents null every reporter field, name included.
func BuildIncident(s IncidentSubmission, incidentDate time.Time) models.Incident {
	incident := models.Incident{
		IncidentType:     models.IncidentType(s.IncidentType),
		Title:            s.Title,
		Description:      s.Description,
		OtherDescription: optional(s.OtherDescription),
		Location:         s.Location,
		Purok:            s.Purok,
		Landmark:         optional(s.Landmark),
		IncidentDate:     incidentDate,
		IsAnonymous:      s.IsAnonymous,
		Status:           models.IncidentReported,
	}
	if s.IncidentType == "" {
		incident.IncidentType = models.OtherIncident
	}

	if !s.IsAnonymous {
		incident.ReporterName = optional(s.ReporterName)
		incident.ReporterEmail = optional(s.ReporterEmail)
		incident.ReporterPhone = optional(s.ReporterPhone)
		incident.ReporterAddress = optional(s.ReporterAddress)
	}

	return incident
}

// PublicReportView is the whitelisted shape returned by the public tracking
// lookup. Identity columns and assigned_to never appear here.
type PublicReportView struct {
	ReferenceNumber string            `json:"reference_number"`
	Type            models.ReportKind `json:"type"`
	Subject         string            `json:"subject"`
	Status          string            `json:"status"`
	Location        string            `json:"location"`
	Purok           string            `json:"purok"`
	Landmark        *string           `json:"landmark,omitempty"`
	ResolutionNotes *string           `json:"resolution_notes,omitempty"`
	IncidentDate    *time.Time        `json:"incident_date,omitempty"`
	ResolvedAt      *time.Time        `json:"resolved_at,omitempty"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
}

func ComplaintPublicView(c *models.Complaint) *PublicReportView {
	return &PublicReportView{
		ReferenceNumber: c.ReferenceNumber,
		Type:            models.ComplaintReport,
		Subject:         c.Subject,
		Status:          string(c.Status),
		Location:        c.Location,
		Purok:           c.Purok,
		Landmark:        c.Landmark,
		ResolutionNotes: c.ResolutionNotes,
		ResolvedAt:      c.ResolvedAt,
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       c.UpdatedAt,
	}
}

func IncidentPublicView(i *models.Incident) *PublicReportView {
	incidentDate := i.IncidentDate
	return &PublicReportView{
		ReferenceNumber: i.ReferenceNumber,
		Type:            models.IncidentReport,
		Subject:         i.Title,
		Status:          string(i.Status),
		Location:        i.Location,
		Purok:           i.Purok,
		Landmark:        i.Landmark,
		ResolutionNotes: i.ActionTaken,
		IncidentDate:    &incidentDate,
		ResolvedAt:      i.ResolvedAt,
		CreatedAt:       i.CreatedAt,
		UpdatedAt:       i.UpdatedAt,
	}
}
