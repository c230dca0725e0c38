package controllers

import (
	"time"

	"barangay-mancruz-backend/config"
	"barangay-mancruz-backend/db/models"
	"barangay-mancruz-backend/reports/repositories"
	"barangay-mancruz-backend/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const exportTimeLayout = "2006-01-02 15:04"

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// ExportComplaintsController generates an Excel workbook of the filtered
// complaints. Identity columns stay redacted for anonymous rows because
// redaction already happened at write time.
func (rc *ReportController) ExportComplaintsController(c *fiber.Ctx) error {
	filters := repositories.ReportFilters{
		Status: c.Query("status"),
		Purok:  c.Query("purok"),
		Search: c.Query("search"),
	}

	complaints, _, err := rc.ComplaintRepo.GetFilteredComplaints(filters, false, 0, 0)
	if err != nil {
		config.Logger.Error("Failed to fetch complaints for export", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to export complaints",
		})
	}

	headers := []string{
		"Reference Number", "Subject", "Type", "Status", "Complainant",
		"Location", "Purok", "Landmark", "Assigned To", "Resolved At", "Created At",
	}
	rows := make([][]string, 0, len(complaints))
	for _, cp := range complaints {
		resolvedAt := ""
		if cp.ResolvedAt != nil {
			resolvedAt = cp.ResolvedAt.Format(exportTimeLayout)
		}
		rows = append(rows, []string{
			cp.ReferenceNumber,
			cp.Subject,
			string(cp.ComplaintType),
			string(cp.Status),
			cp.ComplainantName,
			cp.Location,
			cp.Purok,
			deref(cp.Landmark),
			deref(cp.AssignedTo),
			resolvedAt,
			cp.CreatedAt.Format(exportTimeLayout),
		})
	}

	filePath, err := utils.GenerateExcel("complaints", headers, rows)
	if err != nil {
		config.Logger.Error("Failed to generate complaints workbook", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to generate export file",
		})
	}

	return c.Download(filePath, "complaints-"+time.Now().Format("2006-01-02")+".xlsx")
}

// ExportIncidentsController generates an Excel workbook of the filtered
// incidents.
func (rc *ReportController) ExportIncidentsController(c *fiber.Ctx) error {
	filters := repositories.ReportFilters{
		Status: c.Query("status"),
		Purok:  c.Query("purok"),
		Search: c.Query("search"),
	}

	incidents, _, err := rc.IncidentRepo.GetFilteredIncidents(filters, false, 0, 0)
	if err != nil {
		config.Logger.Error("Failed to fetch incidents for export", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to export incidents",
		})
	}

	headers := []string{
		"Reference Number", "Title", "Type", "Status", "Reporter",
		"Location", "Purok", "Landmark", "Incident Date", "Assigned To", "Resolved At", "Created At",
	}
	rows := make([][]string, 0, len(incidents))
	for _, in := range incidents {
		resolvedAt := ""
		if in.ResolvedAt != nil {
			resolvedAt = in.ResolvedAt.Format(exportTimeLayout)
		}
		reporter := deref(in.ReporterName)
		if in.IsAnonymous {
			reporter = models.AnonymousName
		}
		rows = append(rows, []string{
			in.ReferenceNumber,
			in.Title,
			string(in.IncidentType),
			string(in.Status),
			reporter,
			in.Location,
			in.Purok,
			deref(in.Landmark),
			in.IncidentDate.Format(exportTimeLayout),
			deref(in.AssignedTo),
			resolvedAt,
			in.CreatedAt.Format(exportTimeLayout),
		})
	}

	filePath, err := utils.GenerateExcel("incidents", headers, rows)
	if err != nil {
		config.Logger.Error("Failed to generate incidents workbook", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to generate export file",
		})
	}

	return c.Download(filePath, "incidents-"+time.Now().Format("2006-01-02")+".xlsx")
}
