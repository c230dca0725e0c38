package controllers

import (
	"barangay-mancruz-backend/config"
	"barangay-mancruz-backend/db/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// parseReportRef reads the reportId/reportType query pair shared by the
// attachment and activity listings.
func parseReportRef(c *fiber.Ctx) (models.ReportRef, bool) {
	id, err := uuid.Parse(c.Query("reportId"))
	if err != nil {
		return models.ReportRef{}, false
	}
	kind := models.ReportKind(c.Query("reportType"))
	if !kind.Valid() {
		return models.ReportRef{}, false
	}
	return models.ReportRef{Kind: kind, ID: id}, true
}

// GetReportAttachmentsController lists a report's uploaded evidence for the
// admin detail view.
func (rc *ReportController) GetReportAttachmentsController(c *fiber.Ctx) error {
	ref, ok := parseReportRef(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "reportId and reportType (complaint|incident) are required",
		})
	}

	attachments, err := rc.AttachmentRepo.ListForReport(ref)
	if err != nil {
		config.Logger.Error("Failed to list attachments",
			zap.String("entity_id", ref.ID.String()),
			zap.Error(err),
		)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch attachments",
		})
	}

	return c.JSON(fiber.Map{
		"success":     true,
		"attachments": attachments,
	})
}

// GetReportActivityController lists a report's audit trail, newest first.
func (rc *ReportController) GetReportActivityController(c *fiber.Ctx) error {
	ref, ok := parseReportRef(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "reportId and reportType (complaint|incident) are required",
		})
	}

	entries, err := rc.ActivityRepo.ListForReport(ref)
	if err != nil {
		config.Logger.Error("Failed to list activity logs",
			zap.String("entity_id", ref.ID.String()),
			zap.Error(err),
		)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch activity logs",
		})
	}

	return c.JSON(fiber.Map{
		"success":  true,
		"activity": entries,
	})
}
