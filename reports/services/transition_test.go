package services

import (
	"errors"
	"testing"
	"time"

	"barangay-mancruz-backend/db/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeComplaintStore struct {
	complaint *models.Complaint
	saved     *models.Complaint
	getErr    error
	saveErr   error
}

func (f *fakeComplaintStore) GetComplaintByID(id uuid.UUID) (*models.Complaint, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.complaint, nil
}

func (f *fakeComplaintStore) SaveComplaint(complaint *models.Complaint) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saved = complaint
	return nil
}

type fakeIncidentStore struct {
	incident *models.Incident
	saved    *models.Incident
	getErr   error
	saveErr  error
}

func (f *fakeIncidentStore) GetIncidentByID(id uuid.UUID) (*models.Incident, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.incident, nil
}

func (f *fakeIncidentStore) SaveIncident(incident *models.Incident) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saved = incident
	return nil
}

type fakeActivityAppender struct {
	entries []*models.ActivityLog
	err     error
}

func (f *fakeActivityAppender) AppendActivity(entry *models.ActivityLog) error {
	if f.err != nil {
		return f.err
	}
	f.entries = append(f.entries, entry)
	return nil
}

func strPtr(s string) *string { return &s }

func TestTransitionComplaintStampsResolvedAt(t *testing.T) {
	store := &fakeComplaintStore{complaint: &models.Complaint{
		ID:     uuid.New(),
		Status: models.ComplaintInProgress,
	}}
	logs := &fakeActivityAppender{}

	complaint, err := TransitionComplaint(store, logs, store.complaint.ID, StatusUpdate{
		Status:      "resolved",
		Notes:       strPtr("Talked to the neighbors"),
		PerformedBy: strPtr("Kagawad Reyes"),
	})
	require.NoError(t, err)

	assert.Equal(t, models.ComplaintResolved, complaint.Status)
	require.NotNil(t, complaint.ResolvedAt)
	assert.WithinDuration(t, time.Now(), *complaint.ResolvedAt, time.Minute)
	require.NotNil(t, complaint.ResolutionNotes)
	assert.Equal(t, "Talked to the neighbors", *complaint.ResolutionNotes)
	require.NotNil(t, store.saved)

	require.Len(t, logs.entries, 1)
	entry := logs.entries[0]
	assert.Equal(t, models.ComplaintReport, entry.EntityType)
	assert.Equal(t, models.ActivityUpdated, entry.Action)
	assert.Equal(t, "Status changed to resolved", entry.Details)
	require.NotNil(t, entry.PerformedBy)
	assert.Equal(t, "Kagawad Reyes", *entry.PerformedBy)
}

func TestTransitionComplaintClearsResolvedAtOnReopen(t *testing.T) {
	resolvedAt := time.Now().Add(-time.Hour)
	store := &fakeComplaintStore{complaint: &models.Complaint{
		ID:         uuid.New(),
		Status:     models.ComplaintResolved,
		ResolvedAt: &resolvedAt,
	}}

	complaint, err := TransitionComplaint(store, &fakeActivityAppender{}, store.complaint.ID, StatusUpdate{
		Status: "in_progress",
	})
	require.NoError(t, err)

	assert.Equal(t, models.ComplaintInProgress, complaint.Status)
	assert.Nil(t, complaint.ResolvedAt)
}

func TestTransitionComplaintRejectsUnknownStatus(t *testing.T) {
	store := &fakeComplaintStore{complaint: &models.Complaint{ID: uuid.New()}}

	_, err := TransitionComplaint(store, &fakeActivityAppender{}, store.complaint.ID, StatusUpdate{
		Status: "escalated",
	})

	var invalidStatus *InvalidStatusError
	require.ErrorAs(t, err, &invalidStatus)
	assert.Equal(t, "escalated", invalidStatus.Status)
	// Nothing was loaded or saved
	assert.Nil(t, store.saved)
}

func TestTransitionComplaintNotFound(t *testing.T) {
	store := &fakeComplaintStore{getErr: ErrReportNotFound}

	_, err := TransitionComplaint(store, &fakeActivityAppender{}, uuid.New(), StatusUpdate{
		Status: "closed",
	})
	assert.ErrorIs(t, err, ErrReportNotFound)
}

func TestTransitionComplaintSaveFailureWrapsStoreUnavailable(t *testing.T) {
	store := &fakeComplaintStore{
		complaint: &models.Complaint{ID: uuid.New()},
		saveErr:   errors.New("connection refused"),
	}

	_, err := TransitionComplaint(store, &fakeActivityAppender{}, store.complaint.ID, StatusUpdate{
		Status: "closed",
	})

	var unavailable *StoreUnavailableError
	require.ErrorAs(t, err, &unavailable)
}

func TestTransitionComplaintLogFailureDoesNotFail(t *testing.T) {
	store := &fakeComplaintStore{complaint: &models.Complaint{ID: uuid.New()}}
	logs := &fakeActivityAppender{err: errors.New("activity table locked")}

	complaint, err := TransitionComplaint(store, logs, store.complaint.ID, StatusUpdate{
		Status: "closed",
	})
	require.NoError(t, err)
	assert.Equal(t, models.ComplaintClosed, complaint.Status)
}

func TestTransitionIncidentVocabulary(t *testing.T) {
	// "pending" is a complaint status, not an incident one
	store := &fakeIncidentStore{incident: &models.Incident{ID: uuid.New()}}

	_, err := TransitionIncident(store, &fakeActivityAppender{}, store.incident.ID, StatusUpdate{
		Status: "pending",
	})

	var invalidStatus *InvalidStatusError
	require.ErrorAs(t, err, &invalidStatus)
}

func TestTransitionIncidentResolvedSetsActionTaken(t *testing.T) {
	store := &fakeIncidentStore{incident: &models.Incident{
		ID:     uuid.New(),
		Status: models.IncidentInvestigating,
	}}
	logs := &fakeActivityAppender{}

	incident, err := TransitionIncident(store, logs, store.incident.ID, StatusUpdate{
		Status: "resolved",
		Notes:  strPtr("Fire truck dispatched"),
	})
	require.NoError(t, err)

	assert.Equal(t, models.IncidentResolved, incident.Status)
	require.NotNil(t, incident.ResolvedAt)
	require.NotNil(t, incident.ActionTaken)
	assert.Equal(t, "Fire truck dispatched", *incident.ActionTaken)

	require.Len(t, logs.entries, 1)
	assert.Equal(t, models.IncidentReport, logs.entries[0].EntityType)
}
