package controllers

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"barangay-mancruz-backend/config"
	"barangay-mancruz-backend/db/models"
	"barangay-mancruz-backend/reports/repositories"
	"barangay-mancruz-backend/reports/services"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func TestMain(m *testing.M) {
	config.Logger = zap.NewNop()
	os.Exit(m.Run())
}

type fakeComplaintRepo struct {
	created   *models.Complaint
	complaint *models.Complaint
	createErr error
}

func (f *fakeComplaintRepo) CreateComplaintWithReference(complaint *models.Complaint) error {
	if f.createErr != nil {
		return f.createErr
	}
	complaint.ID = uuid.New()
	complaint.ReferenceNumber = "CMP-2026-001"
	f.created = complaint
	return nil
}

func (f *fakeComplaintRepo) GetComplaintByID(id uuid.UUID) (*models.Complaint, error) {
	if f.complaint == nil {
		return nil, services.ErrReportNotFound
	}
	return f.complaint, nil
}

func (f *fakeComplaintRepo) GetComplaintByReference(reference string) (*models.Complaint, error) {
	if f.complaint == nil || f.complaint.ReferenceNumber != reference {
		return nil, services.ErrReportNotFound
	}
	return f.complaint, nil
}

func (f *fakeComplaintRepo) GetFilteredComplaints(filters repositories.ReportFilters, paginationEnabled bool, limit, offset int) ([]models.Complaint, int64, error) {
	if f.complaint == nil {
		return nil, 0, nil
	}
	return []models.Complaint{*f.complaint}, 1, nil
}

func (f *fakeComplaintRepo) SaveComplaint(complaint *models.Complaint) error {
	f.complaint = complaint
	return nil
}

type fakeIncidentRepo struct {
	incident *models.Incident
}

func (f *fakeIncidentRepo) CreateIncidentWithReference(incident *models.Incident) error {
	incident.ID = uuid.New()
	incident.ReferenceNumber = "INC-2026-001"
	f.incident = incident
	return nil
}

func (f *fakeIncidentRepo) GetIncidentByID(id uuid.UUID) (*models.Incident, error) {
	if f.incident == nil {
		return nil, services.ErrReportNotFound
	}
	return f.incident, nil
}

func (f *fakeIncidentRepo) GetIncidentByReference(reference string) (*models.Incident, error) {
	if f.incident == nil || f.incident.ReferenceNumber != reference {
		return nil, services.ErrReportNotFound
	}
	return f.incident, nil
}

func (f *fakeIncidentRepo) GetFilteredIncidents(filters repositories.ReportFilters, paginationEnabled bool, limit, offset int) ([]models.Incident, int64, error) {
	if f.incident == nil {
		return nil, 0, nil
	}
	return []models.Incident{*f.incident}, 1, nil
}

func (f *fakeIncidentRepo) SaveIncident(incident *models.Incident) error {
	f.incident = incident
	return nil
}

type fakeAttachmentRepo struct {
	attachments []models.FileAttachment
}

func (f *fakeAttachmentRepo) CreateAttachment(attachment *models.FileAttachment) error {
	f.attachments = append(f.attachments, *attachment)
	return nil
}

func (f *fakeAttachmentRepo) ListForReport(ref models.ReportRef) ([]models.FileAttachment, error) {
	return f.attachments, nil
}

func (f *fakeAttachmentRepo) DeleteForReport(tx *gorm.DB, ref models.ReportRef) error {
	f.attachments = nil
	return nil
}

type fakeActivityRepo struct {
	entries []models.ActivityLog
}

func (f *fakeActivityRepo) AppendActivity(entry *models.ActivityLog) error {
	f.entries = append(f.entries, *entry)
	return nil
}

func (f *fakeActivityRepo) ListForReport(ref models.ReportRef) ([]models.ActivityLog, error) {
	return f.entries, nil
}

type fakeFileStorage struct {
	stored []string
}

func (f *fakeFileStorage) UploadFile(file multipart.File, fileName string) (string, error) {
	f.stored = append(f.stored, fileName)
	return fileName, nil
}

func (f *fakeFileStorage) DeleteFile(filePath string) error { return nil }

func (f *fakeFileStorage) FileExists(string) (bool, error) { return true, nil }

func (f *fakeFileStorage) PublicURL(fileName string) string {
	return "http://localhost:8080/uploads/" + fileName
}

func newTestApp() (*fiber.App, *ReportController, *fakeComplaintRepo, *fakeIncidentRepo, *fakeActivityRepo) {
	complaintRepo := &fakeComplaintRepo{}
	incidentRepo := &fakeIncidentRepo{}
	activityRepo := &fakeActivityRepo{}

	controller := &ReportController{
		ComplaintRepo:  complaintRepo,
		IncidentRepo:   incidentRepo,
		AttachmentRepo: &fakeAttachmentRepo{},
		ActivityRepo:   activityRepo,
		FileStorage:    &fakeFileStorage{},
	}

	app := fiber.New(fiber.Config{BodyLimit: 25 * 1024 * 1024})
	app.Post("/api/v1/reports/complaints", controller.CreateComplaintController)
	app.Post("/api/v1/reports/incidents", controller.CreateIncidentController)
	app.Get("/api/v1/track/:referenceNumber", controller.TrackReportController)
	app.Patch("/api/v1/reports/complaints/:id", controller.UpdateComplaintController)
	app.Get("/api/v1/reports/complaints/:id", controller.GetComplaintByIDController)

	return app, controller, complaintRepo, incidentRepo, activityRepo
}

func multipartForm(t *testing.T, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}
	require.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

func decodeBody(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &out))
	return out
}

func TestCreateComplaintAnonymous(t *testing.T) {
	app, _, complaintRepo, _, activityRepo := newTestApp()

	body, contentType := multipartForm(t, map[string]string{
		"subject":      "Loud karaoke",
		"description":  "Karaoke past midnight",
		"location":     "Near the court",
		"purok":        "Purok 2",
		"is_anonymous": "true",
	})

	req := httptest.NewRequest(fiber.MethodPost, "/api/v1/reports/complaints", body)
	req.Header.Set(fiber.HeaderContentType, contentType)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	result := decodeBody(t, resp)
	assert.Equal(t, true, result["success"])
	assert.Equal(t, "CMP-2026-001", result["reference_number"])

	require.NotNil(t, complaintRepo.created)
	assert.Equal(t, models.AnonymousName, complaintRepo.created.ComplainantName)
	assert.Nil(t, complaintRepo.created.ComplainantPhone)

	require.Len(t, activityRepo.entries, 1)
	assert.Equal(t, models.ActivityCreated, activityRepo.entries[0].Action)
	assert.Contains(t, activityRepo.entries[0].Details, "anonymously")
}

func TestCreateComplaintMissingFields(t *testing.T) {
	app, _, complaintRepo, _, _ := newTestApp()

	body, contentType := multipartForm(t, map[string]string{
		"subject": "Loud karaoke",
	})

	req := httptest.NewRequest(fiber.MethodPost, "/api/v1/reports/complaints", body)
	req.Header.Set(fiber.HeaderContentType, contentType)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	result := decodeBody(t, resp)
	assert.Contains(t, result["missing_fields"], "description")
	// A failed validation never reaches the store
	assert.Nil(t, complaintRepo.created)
}

func TestCreateIncident(t *testing.T) {
	app, _, _, incidentRepo, _ := newTestApp()

	body, contentType := multipartForm(t, map[string]string{
		"title":         "Kitchen fire",
		"description":   "Small fire, already out",
		"location":      "Sitio Centro",
		"purok":         "Purok 4",
		"incident_date": "2026-08-20T22:30",
		"is_anonymous":  "true",
	})

	req := httptest.NewRequest(fiber.MethodPost, "/api/v1/reports/incidents", body)
	req.Header.Set(fiber.HeaderContentType, contentType)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	result := decodeBody(t, resp)
	assert.Equal(t, "INC-2026-001", result["reference_number"])

	require.NotNil(t, incidentRepo.incident)
	assert.Nil(t, incidentRepo.incident.ReporterName)
	assert.Equal(t, models.IncidentReported, incidentRepo.incident.Status)
}

func TestTrackReport(t *testing.T) {
	app, _, complaintRepo, _, _ := newTestApp()
	complaintRepo.complaint = &models.Complaint{
		ID:              uuid.New(),
		ReferenceNumber: "CMP-2026-001",
		Subject:         "Loud karaoke",
		Status:          models.ComplaintPending,
		Location:        "Near the court",
		Purok:           "Purok 2",
	}

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/api/v1/track/CMP-2026-001", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	result := decodeBody(t, resp)
	tracked, ok := result["result"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "CMP-2026-001", tracked["reference_number"])
	assert.Equal(t, "pending", tracked["status"])
	// Identity never crosses the tracking boundary
	assert.NotContains(t, tracked, "complainant_name")
	assert.NotContains(t, tracked, "complainant_phone")
}

func TestTrackReportMiss(t *testing.T) {
	app, _, _, _, _ := newTestApp()

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/api/v1/track/CMP-1999-999", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	result := decodeBody(t, resp)
	assert.Equal(t, "No record found with this reference number", result["error"])
}

func TestUpdateComplaintInvalidStatus(t *testing.T) {
	app, _, complaintRepo, _, _ := newTestApp()
	complaintRepo.complaint = &models.Complaint{
		ID:     uuid.New(),
		Status: models.ComplaintPending,
	}

	payload, _ := json.Marshal(fiber.Map{"status": "escalated"})
	req := httptest.NewRequest(fiber.MethodPatch, "/api/v1/reports/complaints/"+complaintRepo.complaint.ID.String(), bytes.NewReader(payload))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestUpdateComplaintNotFound(t *testing.T) {
	app, _, _, _, _ := newTestApp()

	payload, _ := json.Marshal(fiber.Map{"status": "closed"})
	req := httptest.NewRequest(fiber.MethodPatch, "/api/v1/reports/complaints/"+uuid.NewString(), bytes.NewReader(payload))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestUpdateComplaintResolved(t *testing.T) {
	app, _, complaintRepo, _, activityRepo := newTestApp()
	complaintRepo.complaint = &models.Complaint{
		ID:     uuid.New(),
		Status: models.ComplaintInProgress,
	}

	payload, _ := json.Marshal(fiber.Map{
		"status":           "resolved",
		"resolution_notes": "Talked to the neighbors",
		"performed_by":     "Kagawad Reyes",
	})
	req := httptest.NewRequest(fiber.MethodPatch, "/api/v1/reports/complaints/"+complaintRepo.complaint.ID.String(), bytes.NewReader(payload))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	assert.Equal(t, models.ComplaintResolved, complaintRepo.complaint.Status)
	assert.NotNil(t, complaintRepo.complaint.ResolvedAt)

	require.Len(t, activityRepo.entries, 1)
	assert.Equal(t, "Status changed to resolved", activityRepo.entries[0].Details)
}

func TestGetComplaintByIDInvalidUUID(t *testing.T) {
	app, _, _, _, _ := newTestApp()

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/api/v1/reports/complaints/not-a-uuid", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
