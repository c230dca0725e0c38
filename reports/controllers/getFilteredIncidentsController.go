package controllers

import (
	"barangay-mancruz-backend/config"
	"barangay-mancruz-backend/reports/repositories"
	"barangay-mancruz-backend/utils/pagination"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// GetFilteredIncidentsController mirrors the complaint listing for incidents.
func (rc *ReportController) GetFilteredIncidentsController(c *fiber.Ctx) error {
	filters := repositories.ReportFilters{
		Status: c.Query("status"),
		Purok:  c.Query("purok"),
		Search: c.Query("search"),
	}

	paginationEnabled := c.Query("page") != "" || c.Query("page_size") != ""
	params := pagination.ParsePaginationParams(c)

	if paginationEnabled {
		if err := pagination.ValidatePaginationParams(params); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}
	}

	offset := (params.Page - 1) * params.PageSize
	incidents, total, err := rc.IncidentRepo.GetFilteredIncidents(filters, paginationEnabled, params.PageSize, offset)
	if err != nil {
		config.Logger.Error("Failed to fetch filtered incidents", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch incidents",
		})
	}

	if !paginationEnabled {
		return c.JSON(fiber.Map{
			"incidents": incidents,
			"total":     total,
		})
	}

	return c.JSON(pagination.NewPaginatedResponse(c, incidents, total, params))
}
