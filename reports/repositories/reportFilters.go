package repositories

import (
	"barangay-mancruz-backend/db/models"

	"gorm.io/gorm"
)

// ReportFilters is the admin dashboard filter contract. "all" or empty means
// no filter for status and purok; Search matches case-insensitively as a
// substring against subject/title, complainant/reporter name, location and
// purok — a record matches when ANY of those fields contains the text.
type ReportFilters struct {
	Status string
	Purok  string
	Search string
}

// complaintsQueryBuilder builds queries for complaint filtering
type complaintsQueryBuilder struct {
	query   *gorm.DB
	filters ReportFilters
}

func newComplaintsQueryBuilder(db *gorm.DB, filters ReportFilters) *complaintsQueryBuilder {
	return &complaintsQueryBuilder{
		query:   db.Model(&models.Complaint{}),
		filters: filters,
	}
}

func (qb *complaintsQueryBuilder) applyStatusFilter() *complaintsQueryBuilder {
	if qb.filters.Status != "" && qb.filters.Status != "all" {
		qb.query = qb.query.Where("status = ?", qb.filters.Status)
	}
	return qb
}

func (qb *complaintsQueryBuilder) applyPurokFilter() *complaintsQueryBuilder {
	if qb.filters.Purok != "" && qb.filters.Purok != "all" {
		qb.query = qb.query.Where("purok = ?", qb.filters.Purok)
	}
	return qb
}

func (qb *complaintsQueryBuilder) applySearchFilter() *complaintsQueryBuilder {
	if qb.filters.Search != "" {
		pattern := "%" + qb.filters.Search + "%"
		qb.query = qb.query.Where(
			"subject ILIKE ? OR complainant_name ILIKE ? OR location ILIKE ? OR purok ILIKE ?",
			pattern, pattern, pattern, pattern,
		)
	}
	return qb
}

func (qb *complaintsQueryBuilder) applyLatestOrder() *complaintsQueryBuilder {
	qb.query = qb.query.Order("created_at DESC")
	return qb
}

// incidentsQueryBuilder builds queries for incident filtering
type incidentsQueryBuilder struct {
	query   *gorm.DB
	filters ReportFilters
}

func newIncidentsQueryBuilder(db *gorm.DB, filters ReportFilters) *incidentsQueryBuilder {
	return &incidentsQueryBuilder{
		query:   db.Model(&models.Incident{}),
		filters: filters,
	}
}

func (qb *incidentsQueryBuilder) applyStatusFilter() *incidentsQueryBuilder {
	if qb.filters.Status != "" && qb.filters.Status != "all" {
		qb.query = qb.query.Where("status = ?", qb.filters.Status)
	}
	return qb
}

func (qb *incidentsQueryBuilder) applyPurokFilter() *incidentsQueryBuilder {
	if qb.filters.Purok != "" && qb.filters.Purok != "all" {
		qb.query = qb.query.Where("purok = ?", qb.filters.Purok)
	}
	return qb
}

func (qb *incidentsQueryBuilder) applySearchFilter() *incidentsQueryBuilder {
	if qb.filters.Search != "" {
		pattern := "%" + qb.filters.Search + "%"
		qb.query = qb.query.Where(
			"title ILIKE ? OR reporter_name ILIKE ? OR location ILIKE ? OR purok ILIKE ?",
			pattern, pattern, pattern, pattern,
		)
	}
	return qb
}

func (qb *incidentsQueryBuilder) applyLatestOrder() *incidentsQueryBuilder {
	qb.query = qb.query.Order("created_at DESC")
	return qb
}
