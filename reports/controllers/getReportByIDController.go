package controllers

import (
	"errors"

	"barangay-mancruz-backend/config"
	"barangay-mancruz-backend/reports/services"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// GetComplaintByIDController returns one complaint for the admin detail view.
func (rc *ReportController) GetComplaintByIDController(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid complaint ID",
		})
	}

	complaint, err := rc.ComplaintRepo.GetComplaintByID(id)
	if err != nil {
		if errors.Is(err, services.ErrReportNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Complaint not found",
			})
		}
		config.Logger.Error("Failed to fetch complaint", zap.String("id", id.String()), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch complaint",
		})
	}

	return c.JSON(fiber.Map{"complaint": complaint})
}

// GetIncidentByIDController returns one incident for the admin detail view.
func (rc *ReportController) GetIncidentByIDController(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid incident ID",
		})
	}

	incident, err := rc.IncidentRepo.GetIncidentByID(id)
	if err != nil {
		if errors.Is(err, services.ErrReportNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Incident not found",
			})
		}
		config.Logger.Error("Failed to fetch incident", zap.String("id", id.String()), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch incident",
		})
	}

	return c.JSON(fiber.Map{"incident": incident})
}
