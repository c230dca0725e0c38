package controllers

import (
	"errors"
	"fmt"

	"barangay-mancruz-backend/config"
	"barangay-mancruz-backend/db/models"
	"barangay-mancruz-backend/reports/services"
	"barangay-mancruz-backend/tasks"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// CreateIncidentController handles the public incident report form. Unlike
// complaints, an anonymous incident strips the reporter name entirely.
func (rc *ReportController) CreateIncidentController(c *fiber.Ctx) error {
	submission := services.IncidentSubmission{
		ReporterName:     c.FormValue("reporter_name"),
		ReporterEmail:    c.FormValue("reporter_email"),
		ReporterPhone:    c.FormValue("reporter_phone"),
		ReporterAddress:  c.FormValue("reporter_address"),
		IncidentType:     c.FormValue("incident_type"),
		Title:            c.FormValue("title"),
		Description:      c.FormValue("description"),
		OtherDescription: c.FormValue("other_description"),
		Location:         c.FormValue("location"),
		Purok:            c.FormValue("purok"),
		Landmark:         c.FormValue("landmark"),
		IncidentDate:     c.FormValue("incident_date"),
		IsAnonymous:      c.FormValue("is_anonymous") == "true",
	}

	incidentDate, verr := services.ValidateIncidentSubmission(submission)
	if verr != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":          "Missing required fields",
			"missing_fields": verr.MissingFields,
		})
	}

	incident := services.BuildIncident(submission, incidentDate)
	if err := rc.IncidentRepo.CreateIncidentWithReference(&incident); err != nil {
		var refErr *services.ReferenceAllocationError
		if errors.As(err, &refErr) {
			config.Logger.Error("Reference allocation exhausted for incident", zap.Error(err))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to submit incident report",
		})
	}

	uploadedFiles := rc.storeSubmittedImages(c, models.IncidentRef(incident.ID))

	rc.logReportCreated(models.IncidentRef(incident.ID), fmt.Sprintf(
		"Incident %q reported %s in %s%s",
		incident.Title,
		reportedByPhrase(incident.IsAnonymous, incident.ReporterName),
		incident.Purok,
		imageCountSuffix(uploadedFiles),
	))

	if rc.BleveRepo != nil {
		if err := rc.BleveRepo.IndexSingleIncident(incident); err != nil {
			config.Logger.Warn("Failed to index incident", zap.Error(err))
		}
	}

	message := "Incident reported successfully! The barangay will review it shortly."
	if !incident.IsAnonymous && incident.ReporterEmail != nil {
		recipientName := ""
		if incident.ReporterName != nil {
			recipientName = *incident.ReporterName
		}
		tasks.EnqueueReportConfirmation(rc.AsynqClient, tasks.ReportConfirmationPayload{
			Email:           *incident.ReporterEmail,
			RecipientName:   recipientName,
			ReferenceNumber: incident.ReferenceNumber,
			ReportType:      string(models.IncidentReport),
		})
		message = "Incident reported successfully! A confirmation email with your reference number has been sent."
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success":          true,
		"message":          message,
		"reference_number": incident.ReferenceNumber,
		"uploaded_files":   uploadedFiles,
	})
}

func reportedByPhrase(isAnonymous bool, name *string) string {
	if isAnonymous || name == nil {
		return "anonymously"
	}
	return "by " + *name
}
