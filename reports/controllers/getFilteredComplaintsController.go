package controllers

import (
	"barangay-mancruz-backend/config"
	"barangay-mancruz-backend/reports/repositories"
	"barangay-mancruz-backend/utils/pagination"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// GetFilteredComplaintsController serves the admin dashboard complaint list.
// Without page params it returns the full filtered set; with them it wraps the
// page in the shared pagination envelope.
func (rc *ReportController) GetFilteredComplaintsController(c *fiber.Ctx) error {
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
	complaints, total, err := rc.ComplaintRepo.GetFilteredComplaints(filters, paginationEnabled, params.PageSize, offset)
	if err != nil {
		config.Logger.Error("Failed to fetch filtered complaints", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch complaints",
		})
	}

	if !paginationEnabled {
		return c.JSON(fiber.Map{
			"complaints": complaints,
			"total":      total,
		})
	}

	return c.JSON(pagination.NewPaginatedResponse(c, complaints, total, params))
}
