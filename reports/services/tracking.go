package services

import (
	"errors"

	"barangay-mancruz-backend/db/models"
)

// ComplaintsByReference and IncidentsByReference are the repository slices
// the public tracker needs.
type ComplaintsByReference interface {
	GetComplaintByReference(reference string) (*models.Complaint, error)
}

type IncidentsByReference interface {
	GetIncidentByReference(reference string) (*models.Incident, error)
}

// TrackByReference resolves a public reference number to its whitelisted
// view. Complaints are probed first, then incidents; the caller never learns
// which namespaces were probed on a miss.
func TrackByReference(complaints ComplaintsByReference, incidents IncidentsByReference, reference string) (*PublicReportView, error) {
	complaint, err := complaints.GetComplaintByReference(reference)
	if err == nil {
		return ComplaintPublicView(complaint), nil
	}
	if !errors.Is(err, ErrReportNotFound) {
		return nil, err
	}

	incident, err := incidents.GetIncidentByReference(reference)
	if err == nil {
		return IncidentPublicView(incident), nil
	}
	return nil, err
}
