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

// CreateComplaintController handles the public complaint submission form.
// The record insert and reference allocation are transactional; attachments
// and the confirmation email run post-commit and never fail the submission.
func (rc *ReportController) CreateComplaintController(c *fiber.Ctx) error {
	submission := services.ComplaintSubmission{
		ComplainantName:    c.FormValue("complainant_name"),
		ComplainantEmail:   c.FormValue("complainant_email"),
		ComplainantPhone:   c.FormValue("complainant_phone"),
		ComplainantAddress: c.FormValue("complainant_address"),
		ComplaintType:      c.FormValue("complaint_type"),
		Subject:            c.FormValue("subject"),
		Description:        c.FormValue("description"),
		OtherDescription:   c.FormValue("other_description"),
		Location:           c.FormValue("location"),
		Purok:              c.FormValue("purok"),
		Landmark:           c.FormValue("landmark"),
		IsAnonymous:        c.FormValue("is_anonymous") == "true",
	}

	if verr := services.ValidateComplaintSubmission(submission); verr != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":          "Missing required fields",
			"missing_fields": verr.MissingFields,
		})
	}

	complaint := services.BuildComplaint(submission)
	if err := rc.ComplaintRepo.CreateComplaintWithReference(&complaint); err != nil {
		var refErr *services.ReferenceAllocationError
		if errors.As(err, &refErr) {
			config.Logger.Error("Reference allocation exhausted for complaint", zap.Error(err))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to submit complaint",
		})
	}

	uploadedFiles := rc.storeSubmittedImages(c, models.ComplaintRef(complaint.ID))

	rc.logReportCreated(models.ComplaintRef(complaint.ID), fmt.Sprintf(
		"Complaint %q submitted %s in %s%s",
		complaint.Subject,
		submittedByPhrase(complaint.IsAnonymous, complaint.ComplainantName),
		complaint.Purok,
		imageCountSuffix(uploadedFiles),
	))

	if rc.BleveRepo != nil {
		if err := rc.BleveRepo.IndexSingleComplaint(complaint); err != nil {
			config.Logger.Warn("Failed to index complaint", zap.Error(err))
		}
	}

	message := "Complaint submitted successfully! You will be contacted within 24 hours."
	if !complaint.IsAnonymous && complaint.ComplainantEmail != nil {
		tasks.EnqueueReportConfirmation(rc.AsynqClient, tasks.ReportConfirmationPayload{
			Email:           *complaint.ComplainantEmail,
			RecipientName:   complaint.ComplainantName,
			ReferenceNumber: complaint.ReferenceNumber,
			ReportType:      string(models.ComplaintReport),
		})
		message = "Complaint submitted successfully! A confirmation email with your reference number has been sent."
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success":          true,
		"message":          message,
		"reference_number": complaint.ReferenceNumber,
		"uploaded_files":   uploadedFiles,
	})
}

func submittedByPhrase(isAnonymous bool, name string) string {
	if isAnonymous {
		return "anonymously"
	}
	return "by " + name
}

func imageCountSuffix(count int) string {
	if count == 0 {
		return ""
	}
	return fmt.Sprintf(" with %d image(s)", count)
}

// logReportCreated appends the creation audit entry. A failure here is only
// warned about; the report itself is already committed.
func (rc *ReportController) logReportCreated(ref models.ReportRef, details string) {
	entry := &models.ActivityLog{
		EntityType: ref.Kind,
		EntityID:   ref.ID,
		Action:     models.ActivityCreated,
		Details:    details,
	}
	if err := rc.ActivityRepo.AppendActivity(entry); err != nil {
		config.Logger.Warn("Failed to append creation activity log",
			zap.String("entity_type", string(ref.Kind)),
			zap.String("entity_id", ref.ID.String()),
			zap.Error(err),
		)
	}
}
