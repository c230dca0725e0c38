package controllers

import (
	"errors"

	"barangay-mancruz-backend/config"
	"barangay-mancruz-backend/reports/services"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type statusUpdateRequest struct {
	Status          string  `json:"status"`
	AssignedTo      *string `json:"assigned_to"`
	ResolutionNotes *string `json:"resolution_notes"`
	ActionTaken     *string `json:"action_taken"`
	PerformedBy     *string `json:"performed_by"`
}

// UpdateComplaintController applies an admin status change to a complaint.
func (rc *ReportController) UpdateComplaintController(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid complaint ID",
		})
	}

	var req statusUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	complaint, err := services.TransitionComplaint(rc.ComplaintRepo, rc.ActivityRepo, id, services.StatusUpdate{
		Status:      req.Status,
		AssignedTo:  req.AssignedTo,
		Notes:       req.ResolutionNotes,
		PerformedBy: req.PerformedBy,
	})
	if err != nil {
		return rc.statusUpdateError(c, err, "complaint", id)
	}

	if rc.BleveRepo != nil {
		if err := rc.BleveRepo.UpdateComplaint(*complaint); err != nil {
			config.Logger.Warn("Failed to reindex complaint", zap.Error(err))
		}
	}

	return c.JSON(fiber.Map{
		"success":   true,
		"complaint": complaint,
	})
}

// UpdateIncidentController applies an admin status change to an incident.
func (rc *ReportController) UpdateIncidentController(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid incident ID",
		})
	}

	var req statusUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	incident, err := services.TransitionIncident(rc.IncidentRepo, rc.ActivityRepo, id, services.StatusUpdate{
		Status:      req.Status,
		AssignedTo:  req.AssignedTo,
		Notes:       req.ActionTaken,
		PerformedBy: req.PerformedBy,
	})
	if err != nil {
		return rc.statusUpdateError(c, err, "incident", id)
	}

	if rc.BleveRepo != nil {
		if err := rc.BleveRepo.UpdateIncident(*incident); err != nil {
			config.Logger.Warn("Failed to reindex incident", zap.Error(err))
		}
	}

	return c.JSON(fiber.Map{
		"success":  true,
		"incident": incident,
	})
}

func (rc *ReportController) statusUpdateError(c *fiber.Ctx, err error, kind string, id uuid.UUID) error {
	var invalidStatus *services.InvalidStatusError
	switch {
	case errors.As(err, &invalidStatus):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": invalidStatus.Error(),
		})
	case errors.Is(err, services.ErrReportNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Report not found",
		})
	default:
		config.Logger.Error("Failed to update report status",
			zap.String("kind", kind),
			zap.String("id", id.String()),
			zap.Error(err),
		)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update status",
		})
	}
}
