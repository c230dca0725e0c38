package services

import (
	"errors"
	"testing"

	"barangay-mancruz-backend/db/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeComplaintLookup struct {
	complaint *models.Complaint
	err       error
	probed    bool
}

func (f *fakeComplaintLookup) GetComplaintByReference(reference string) (*models.Complaint, error) {
	f.probed = true
	if f.err != nil {
		return nil, f.err
	}
	return f.complaint, nil
}

type fakeIncidentLookup struct {
	incident *models.Incident
	err      error
	probed   bool
}

func (f *fakeIncidentLookup) GetIncidentByReference(reference string) (*models.Incident, error) {
	f.probed = true
	if f.err != nil {
		return nil, f.err
	}
	return f.incident, nil
}

func TestTrackByReferenceFindsComplaintFirst(t *testing.T) {
	complaints := &fakeComplaintLookup{complaint: &models.Complaint{
		ReferenceNumber: "CMP-2026-001",
		Subject:         "Loud karaoke",
		Status:          models.ComplaintPending,
	}}
	incidents := &fakeIncidentLookup{err: ErrReportNotFound}

	view, err := TrackByReference(complaints, incidents, "CMP-2026-001")
	require.NoError(t, err)

	assert.Equal(t, models.ComplaintReport, view.Type)
	assert.Equal(t, "CMP-2026-001", view.ReferenceNumber)
	// The complaint hit short-circuits the incident probe
	assert.False(t, incidents.probed)
}

func TestTrackByReferenceFallsThroughToIncidents(t *testing.T) {
	complaints := &fakeComplaintLookup{err: ErrReportNotFound}
	incidents := &fakeIncidentLookup{incident: &models.Incident{
		ReferenceNumber: "INC-2026-002",
		Title:           "Kitchen fire",
		Status:          models.IncidentReported,
	}}

	view, err := TrackByReference(complaints, incidents, "INC-2026-002")
	require.NoError(t, err)

	assert.Equal(t, models.IncidentReport, view.Type)
	assert.Equal(t, "Kitchen fire", view.Subject)
	assert.True(t, complaints.probed)
}

func TestTrackByReferenceMiss(t *testing.T) {
	complaints := &fakeComplaintLookup{err: ErrReportNotFound}
	incidents := &fakeIncidentLookup{err: ErrReportNotFound}

	_, err := TrackByReference(complaints, incidents, "CMP-1999-999")
	assert.ErrorIs(t, err, ErrReportNotFound)
}

func TestTrackByReferenceStoreFailureStopsProbing(t *testing.T) {
	storeErr := errors.New("connection refused")
	complaints := &fakeComplaintLookup{err: storeErr}
	incidents := &fakeIncidentLookup{}

	_, err := TrackByReference(complaints, incidents, "CMP-2026-001")
	assert.ErrorIs(t, err, storeErr)
	assert.False(t, incidents.probed)
}
