package controllers

import (
	"errors"
	"strings"

	"barangay-mancruz-backend/config"
	"barangay-mancruz-backend/reports/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// TrackReportController resolves a public reference number to its redacted
// view. This is the only unauthenticated read path, so it exposes nothing
// beyond the whitelisted fields.
func (rc *ReportController) TrackReportController(c *fiber.Ctx) error {
	reference := strings.TrimSpace(c.Params("referenceNumber"))
	if reference == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Reference number is required",
		})
	}

	result, err := services.TrackByReference(rc.ComplaintRepo, rc.IncidentRepo, reference)
	if err != nil {
		if errors.Is(err, services.ErrReportNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "No record found with this reference number",
			})
		}
		config.Logger.Error("Failed to track report", zap.String("reference", reference), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to look up reference number",
		})
	}

	return c.JSON(fiber.Map{"result": result})
}
