package seeds

import (
	"fmt"

	"barangay-mancruz-backend/config"
	"barangay-mancruz-backend/db/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SeedPuroks seeds the eight puroks of Barangay Mancruz. The submission forms
// only offer Purok 1-4; 5-8 exist for landmarks and admin filtering.
func SeedPuroks(db *gorm.DB) error {
	config.Logger.Info("Starting purok seeding...")

	for i := 1; i <= 8; i++ {
		purok := models.Purok{
			Name:        fmt.Sprintf("Purok %d", i),
			Description: fmt.Sprintf("Purok %d - Barangay Mancruz", i),
		}
		err := db.Where(models.Purok{Name: purok.Name}).
			FirstOrCreate(&purok).Error
		if err != nil {
			config.Logger.Error("Failed to seed purok",
				zap.String("name", purok.Name),
				zap.Error(err))
			return err
		}
	}

	config.Logger.Info("Purok seeding completed")
	return nil
}

// SeedLandmarks seeds the well-known reference points residents use to
// describe report locations.
func SeedLandmarks(db *gorm.DB) error {
	config.Logger.Info("Starting landmark seeding...")

	landmarks := []models.Landmark{
		{Name: "Barangay Hall", Purok: "Purok 1", Description: "Main administrative building", IsActive: true},
		{Name: "Elementary School", Purok: "Purok 2", Description: "Primary education facility", IsActive: true},
		{Name: "Health Center", Purok: "Purok 3", Description: "Community health facility", IsActive: true},
		{Name: "Basketball Court", Purok: "Purok 4", Description: "Community sports facility", IsActive: true},
		{Name: "Chapel", Purok: "Purok 5", Description: "Community worship place", IsActive: true},
		{Name: "Market Area", Purok: "Purok 6", Description: "Local market and trading area", IsActive: true},
		{Name: "Water Station", Purok: "Purok 7", Description: "Community water supply", IsActive: true},
		{Name: "Community Center", Purok: "Purok 8", Description: "Multi-purpose community building", IsActive: true},
	}

	for _, landmark := range landmarks {
		err := db.Where(models.Landmark{Name: landmark.Name, Purok: landmark.Purok}).
			FirstOrCreate(&landmark).Error
		if err != nil {
			config.Logger.Error("Failed to seed landmark",
				zap.String("name", landmark.Name),
				zap.Error(err))
			return err
		}
	}

	config.Logger.Info("Landmark seeding completed")
	return nil
}

// SeedAll runs every seeder in order.
func SeedAll(db *gorm.DB) error {
	if err := SeedPuroks(db); err != nil {
		return err
	}
	if err := SeedLandmarks(db); err != nil {
		return err
	}
	return nil
}
