package services

import (
	"fmt"
	"time"

	"barangay-mancruz-backend/config"
	"barangay-mancruz-backend/db/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// StatusUpdate carries an admin status change for either variant. Notes land
// in resolution_notes for complaints and action_taken for incidents.
type StatusUpdate struct {
	Status      string
	AssignedTo  *string
	Notes       *string
	PerformedBy *string
}

// ComplaintStore is the slice of the complaint repository the transition
// engine needs.
type ComplaintStore interface {
	GetComplaintByID(id uuid.UUID) (*models.Complaint, error)
	SaveComplaint(complaint *models.Complaint) error
}

// IncidentStore mirrors ComplaintStore for incidents.
type IncidentStore interface {
	GetIncidentByID(id uuid.UUID) (*models.Incident, error)
	SaveIncident(incident *models.Incident) error
}

// ActivityAppender appends one audit entry per mutation.
type ActivityAppender interface {
	AppendActivity(entry *models.ActivityLog) error
}

// TransitionComplaint validates and applies a status change. resolved_at is
// stamped exactly when the target status is "resolved" and cleared otherwise.
// The activity entry is appended after the primary write commits; a log
// failure is warned about but never rolls the primary write back.
func TransitionComplaint(store ComplaintStore, logs ActivityAppender, id uuid.UUID, update StatusUpdate) (*models.Complaint, error) {
	status := models.ComplaintStatus(update.Status)
	if !status.Valid() {
		return nil, &InvalidStatusError{Status: update.Status, Kind: string(models.ComplaintReport)}
	}

	complaint, err := store.GetComplaintByID(id)
	if err != nil {
		return nil, err
	}

	complaint.Status = status
	complaint.AssignedTo = update.AssignedTo
	complaint.ResolutionNotes = update.Notes
	if status == models.ComplaintResolved {
		now := time.Now()
		complaint.ResolvedAt = &now
	} else {
		complaint.ResolvedAt = nil
	}

	if err := store.SaveComplaint(complaint); err != nil {
		return nil, &StoreUnavailableError{Err: err}
	}

	appendStatusActivity(logs, models.ComplaintRef(complaint.ID), update)
	return complaint, nil
}

// TransitionIncident is the incident counterpart of TransitionComplaint.
func TransitionIncident(store IncidentStore, logs ActivityAppender, id uuid.UUID, update StatusUpdate) (*models.Incident, error) {
	status := models.IncidentStatus(update.Status)
	if !status.Valid() {
		return nil, &InvalidStatusError{Status: update.Status, Kind: string(models.IncidentReport)}
	}

	incident, err := store.GetIncidentByID(id)
	if err != nil {
		return nil, err
	}

	incident.Status = status
	incident.AssignedTo = update.AssignedTo
	incident.ActionTaken = update.Notes
	if status == models.IncidentResolved {
		now := time.Now()
		incident.ResolvedAt = &now
	} else {
		incident.ResolvedAt = nil
	}

	if err := store.SaveIncident(incident); err != nil {
		return nil, &StoreUnavailableError{Err: err}
	}

	appendStatusActivity(logs, models.IncidentRef(incident.ID), update)
	return incident, nil
}

func appendStatusActivity(logs ActivityAppender, ref models.ReportRef, update StatusUpdate) {
	entry := &models.ActivityLog{
		EntityType:  ref.Kind,
		EntityID:    ref.ID,
		Action:      models.ActivityUpdated,
		Details:     fmt.Sprintf("Status changed to %s", update.Status),
		PerformedBy: update.PerformedBy,
	}
	if err := logs.AppendActivity(entry); err != nil {
		// Audit failures never roll back the status change
		config.Logger.Warn("Failed to append activity log for status change",
			zap.String("entity_type", string(ref.Kind)),
			zap.String("entity_id", ref.ID.String()),
			zap.Error(err),
		)
	}
}
