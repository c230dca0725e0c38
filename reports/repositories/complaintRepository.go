package repositories

import (
	"errors"
	"fmt"
	"time"

	"barangay-mancruz-backend/config"
	"barangay-mancruz-backend/db/models"
	"barangay-mancruz-backend/reports/services"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type ComplaintRepository interface {
	CreateComplaintWithReference(complaint *models.Complaint) error
	GetComplaintByID(id uuid.UUID) (*models.Complaint, error)
	GetComplaintByReference(reference string) (*models.Complaint, error)
	GetFilteredComplaints(filters ReportFilters, paginationEnabled bool, limit, offset int) ([]models.Complaint, int64, error)
	SaveComplaint(complaint *models.Complaint) error
}

type complaintRepository struct {
	db *gorm.DB
}

// NewComplaintRepository initializes a new complaint repository
func NewComplaintRepository(db *gorm.DB) ComplaintRepository {
	return &complaintRepository{db: db}
}

// CreateComplaintWithReference allocates the CMP reference number and inserts
// the complaint in one transaction. On a duplicate reference (concurrent
// submission won the sequence) the whole transaction rolls back and the
// allocation retries with a fresh sequence, up to the bounded attempt count.
func (cr *complaintRepository) CreateComplaintWithReference(complaint *models.Complaint) error {
	year := time.Now().Year()

	for attempt := 1; attempt <= services.ReferenceMaxAttempts; attempt++ {
		err := cr.db.Transaction(func(tx *gorm.DB) error {
			var last []string
			// Longer references sort first so the max stays numeric once the
			// sequence grows past three digits (CMP-2026-1000 > CMP-2026-999)
			err := tx.Model(&models.Complaint{}).
				Where("reference_number LIKE ?", fmt.Sprintf("%s-%d-%%", services.ComplaintReferencePrefix, year)).
				Order("length(reference_number) DESC, reference_number DESC").
				Limit(1).
				Pluck("reference_number", &last).Error
			if err != nil {
				return err
			}

			sequence := 1
			if len(last) > 0 {
				sequence = services.NextSequence(last[0], services.ComplaintReferencePrefix, year)
			}
			complaint.ReferenceNumber = services.FormatReferenceNumber(services.ComplaintReferencePrefix, year, sequence)

			return tx.Create(complaint).Error
		})
		if err == nil {
			return nil
		}
		if !services.IsUniqueViolation(err) {
			config.Logger.Error("Failed to create complaint", zap.Error(err))
			return &services.StoreUnavailableError{Err: err}
		}
		config.Logger.Warn("Reference number collision, retrying allocation",
			zap.String("reference", complaint.ReferenceNumber),
			zap.Int("attempt", attempt),
		)
		// A fresh insert must not reuse the id GORM assigned on the failed try
		complaint.ID = uuid.Nil
	}

	return &services.ReferenceAllocationError{
		Prefix:   services.ComplaintReferencePrefix,
		Attempts: services.ReferenceMaxAttempts,
	}
}

func (cr *complaintRepository) GetComplaintByID(id uuid.UUID) (*models.Complaint, error) {
	var complaint models.Complaint
	if err := cr.db.First(&complaint, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, services.ErrReportNotFound
		}
		return nil, fmt.Errorf("failed to get complaint: %w", err)
	}
	return &complaint, nil
}

func (cr *complaintRepository) GetComplaintByReference(reference string) (*models.Complaint, error) {
	var complaint models.Complaint
	if err := cr.db.First(&complaint, "reference_number = ?", reference).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, services.ErrReportNotFound
		}
		return nil, fmt.Errorf("failed to get complaint by reference: %w", err)
	}
	return &complaint, nil
}

// GetFilteredComplaints returns filtered complaints newest first, with the
// unpaginated total for the dashboard meta.
func (cr *complaintRepository) GetFilteredComplaints(filters ReportFilters, paginationEnabled bool, limit, offset int) ([]models.Complaint, int64, error) {
	qb := newComplaintsQueryBuilder(cr.db, filters).applyStatusFilter().applyPurokFilter().applySearchFilter().applyLatestOrder()
	qb2 := newComplaintsQueryBuilder(cr.db, filters).applyStatusFilter().applyPurokFilter().applySearchFilter()

	if paginationEnabled {
		qb.query = qb.query.Limit(limit).Offset(offset)
	}

	var complaints []models.Complaint
	if err := qb.query.Find(&complaints).Error; err != nil {
		return nil, 0, err
	}

	var total int64
	if err := qb2.query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	return complaints, total, nil
}

func (cr *complaintRepository) SaveComplaint(complaint *models.Complaint) error {
	if err := cr.db.Save(complaint).Error; err != nil {
		config.Logger.Error("Failed to save complaint",
			zap.String("complaintID", complaint.ID.String()),
			zap.Error(err))
		return fmt.Errorf("failed to save complaint: %w", err)
	}
	return nil
}
