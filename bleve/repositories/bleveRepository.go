package repositories

import (
	"context"

	bleveindex "barangay-mancruz-backend/bleve/services"
	"barangay-mancruz-backend/db/models"

	"github.com/blevesearch/bleve/v2"
)

type BleveRepository struct {
	indexer *bleveindex.IndexingService
}

// ReportIndexRepositoryInterface is the admin full-text search surface over
// both report variants. The index is a convenience copy; the database stays
// the source of truth and an indexing failure never fails the primary write.
type ReportIndexRepositoryInterface interface {
	// General
	DeleteAllIndices(ctx context.Context) error

	// ==== Complaint Indexing ====
	IndexSingleComplaint(complaint models.Complaint) error
	IndexExistingComplaints(complaints []models.Complaint) error
	UpdateComplaint(complaint models.Complaint) error
	DeleteComplaint(complaintID string) error

	// ==== Incident Indexing ====
	IndexSingleIncident(incident models.Incident) error
	IndexExistingIncidents(incidents []models.Incident) error
	UpdateIncident(incident models.Incident) error
	DeleteIncident(incidentID string) error

	// ==== Search ====
	SearchReports(queryString, status, purok, reportType string) (*bleve.SearchResult, error)
	GetReportDocument(id string) (interface{}, error)
}

// Constructor returning both the struct and the interface
func NewBleveRepository(indexer *bleveindex.IndexingService) (*BleveRepository, ReportIndexRepositoryInterface) {
	repo := &BleveRepository{indexer: indexer}
	return repo, repo
}

func (r *BleveRepository) DeleteAllIndices(ctx context.Context) error {
	return r.indexer.DeleteAllIndices()
}
