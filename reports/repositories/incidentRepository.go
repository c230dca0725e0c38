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

type IncidentRepository interface {
	CreateIncidentWithReference(incident *models.Incident) error
	GetIncidentByID(id uuid.UUID) (*models.Incident, error)
	GetIncidentByReference(reference string) (*models.Incident, error)
	GetFilteredIncidents(filters ReportFilters, paginationEnabled bool, limit, offset int) ([]models.Incident, int64, error)
	SaveIncident(incident *models.Incident) error
}

type incidentRepository struct {
	db *gorm.DB
}

// NewIncidentRepository initializes a new incident repository
func NewIncidentRepository(db *gorm.DB) IncidentRepository {
	return &incidentRepository{db: db}
}

// CreateIncidentWithReference mirrors the complaint path with the INC
// namespace. See CreateComplaintWithReference for the retry contract.
func (ir *incidentRepository) CreateIncidentWithReference(incident *models.Incident) error {
	year := time.Now().Year()

	for attempt := 1; attempt <= services.ReferenceMaxAttempts; attempt++ {
		err := ir.db.Transaction(func(tx *gorm.DB) error {
			var last []string
			// Longer references sort first so the max stays numeric once the
			// sequence grows past three digits (INC-2026-1000 > INC-2026-999)
			err := tx.Model(&models.Incident{}).
				Where("reference_number LIKE ?", fmt.Sprintf("%s-%d-%%", services.IncidentReferencePrefix, year)).
				Order("length(reference_number) DESC, reference_number DESC").
				Limit(1).
				Pluck("reference_number", &last).Error
			if err != nil {
				return err
			}

			sequence := 1
			if len(last) > 0 {
				sequence = services.NextSequence(last[0], services.IncidentReferencePrefix, year)
			}
			incident.ReferenceNumber = services.FormatReferenceNumber(services.IncidentReferencePrefix, year, sequence)

			return tx.Create(incident).Error
		})
		if err == nil {
			return nil
		}
		if !services.IsUniqueViolation(err) {
			config.Logger.Error("Failed to create incident", zap.Error(err))
			return &services.StoreUnavailableError{Err: err}
		}
		config.Logger.Warn("Reference number collision, retrying allocation",
			zap.String("reference", incident.ReferenceNumber),
			zap.Int("attempt", attempt),
		)
		incident.ID = uuid.Nil
	}

	return &services.ReferenceAllocationError{
		Prefix:   services.IncidentReferencePrefix,
		Attempts: services.ReferenceMaxAttempts,
	}
}

func (ir *incidentRepository) GetIncidentByID(id uuid.UUID) (*models.Incident, error) {
	var incident models.Incident
	if err := ir.db.First(&incident, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, services.ErrReportNotFound
		}
		return nil, fmt.Errorf("failed to get incident: %w", err)
	}
	return &incident, nil
}

func (ir *incidentRepository) GetIncidentByReference(reference string) (*models.Incident, error) {
	var incident models.Incident
	if err := ir.db.First(&incident, "reference_number = ?", reference).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, services.ErrReportNotFound
		}
		return nil, fmt.Errorf("failed to get incident by reference: %w", err)
	}
	return &incident, nil
}

func (ir *incidentRepository) GetFilteredIncidents(filters ReportFilters, paginationEnabled bool, limit, offset int) ([]models.Incident, int64, error) {
	qb := newIncidentsQueryBuilder(ir.db, filters).applyStatusFilter().applyPurokFilter().applySearchFilter().applyLatestOrder()
	qb2 := newIncidentsQueryBuilder(ir.db, filters).applyStatusFilter().applyPurokFilter().applySearchFilter()

	if paginationEnabled {
		qb.query = qb.query.Limit(limit).Offset(offset)
	}

	var incidents []models.Incident
	if err := qb.query.Find(&incidents).Error; err != nil {
		return nil, 0, err
	}

	var total int64
	if err := qb2.query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	return incidents, total, nil
}

func (ir *incidentRepository) SaveIncident(incident *models.Incident) error {
	if err := ir.db.Save(incident).Error; err != nil {
		config.Logger.Error("Failed to save incident",
			zap.String("incidentID", incident.ID.String()),
			zap.Error(err))
		return fmt.Errorf("failed to save incident: %w", err)
	}
	return nil
}
