package controllers

import (
	"barangay-mancruz-backend/bleve/repositories"

	"github.com/gofiber/fiber/v2"
)

type SearchController struct {
	repo *repositories.BleveRepository
}

func NewSearchController(repo *repositories.BleveRepository) *SearchController {
	return &SearchController{repo: repo}
}

// SearchReportsController serves the admin quick-search box across both
// report variants.
func (c *SearchController) SearchReportsController(ctx *fiber.Ctx) error {
	query := ctx.Query("q")
	status := ctx.Query("status")
	purok := ctx.Query("purok")
	reportType := ctx.Query("report_type")

	results, err := c.repo.SearchReports(query, status, purok, reportType)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Search failed",
		})
	}

	var matches []interface{}
	for _, hit := range results.Hits {
		doc, err := c.repo.GetReportDocument(hit.ID)
		if err != nil {
			continue
		}
		matches = append(matches, doc)
	}

	return ctx.JSON(fiber.Map{
		"results": matches,
		"total":   results.Total,
	})
}
