package repositories

import (
	"fmt"
	"regexp"
	"strconv"

	"barangay-mancruz-backend/db/models"

	"gorm.io/gorm"
)

type LookupRepository interface {
	GetPuroks() ([]models.Purok, error)
	GetActiveLandmarks() ([]models.Landmark, error)
}

type lookupRepository struct {
	db *gorm.DB
}

// NewLookupRepository initializes a new lookup repository
func NewLookupRepository(db *gorm.DB) LookupRepository {
	return &lookupRepository{db: db}
}

var purokNumberPattern = regexp.MustCompile(`\d+`)

// GetPuroks returns the puroks offered on the public submission forms. The
// forms only cover Purok 1-4; higher-numbered puroks stay in the table for
// landmarks and historical reports but are filtered out here.
func (lr *lookupRepository) GetPuroks() ([]models.Purok, error) {
	var puroks []models.Purok
	if err := lr.db.Order("name ASC").Find(&puroks).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch puroks: %w", err)
	}

	filtered := make([]models.Purok, 0, len(puroks))
	seen := make(map[string]bool)
	for _, purok := range puroks {
		match := purokNumberPattern.FindString(purok.Name)
		if match == "" {
			continue
		}
		if n, err := strconv.Atoi(match); err != nil || n > 4 {
			continue
		}
		if seen[purok.Name] {
			continue
		}
		seen[purok.Name] = true
		filtered = append(filtered, purok)
	}

	return filtered, nil
}

// GetActiveLandmarks returns active landmarks ordered by purok then name.
func (lr *lookupRepository) GetActiveLandmarks() ([]models.Landmark, error) {
	var landmarks []models.Landmark
	err := lr.db.
		Where("is_active = ?", true).
		Order("purok ASC").
		Order("name ASC").
		Find(&landmarks).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch landmarks: %w", err)
	}
	return landmarks, nil
}
