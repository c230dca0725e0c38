package controllers

import (
	"context"
	"encoding/json"
	"time"

	"barangay-mancruz-backend/config"
	"barangay-mancruz-backend/lookups/repositories"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Cache keys for the lookup lists. The nightly cleanup job clears these so a
// stale cache never outlives a day.
const (
	PurokCacheKey    = "lookup:puroks"
	LandmarkCacheKey = "lookup:landmarks"

	lookupCacheTTL = time.Hour
)

type LookupController struct {
	LookupRepo  repositories.LookupRepository
	RedisClient *redis.Client
}

// fallbackPuroks serves the submission forms when both the cache and the
// database are unavailable.
var fallbackPuroks = []fiber.Map{
	{"id": 1, "name": "Purok 1", "description": "Purok 1 - Barangay Mancruz"},
	{"id": 2, "name": "Purok 2", "description": "Purok 2 - Barangay Mancruz"},
	{"id": 3, "name": "Purok 3", "description": "Purok 3 - Barangay Mancruz"},
	{"id": 4, "name": "Purok 4", "description": "Purok 4 - Barangay Mancruz"},
}

var fallbackLandmarks = []fiber.Map{
	{"id": 1, "name": "Barangay Hall", "purok": "Purok 1", "description": "Main administrative building", "is_active": true},
	{"id": 2, "name": "Elementary School", "purok": "Purok 2", "description": "Primary education facility", "is_active": true},
	{"id": 3, "name": "Health Center", "purok": "Purok 3", "description": "Community health facility", "is_active": true},
	{"id": 4, "name": "Basketball Court", "purok": "Purok 4", "description": "Community sports facility", "is_active": true},
	{"id": 5, "name": "Chapel", "purok": "Purok 5", "description": "Community worship place", "is_active": true},
	{"id": 6, "name": "Market Area", "purok": "Purok 6", "description": "Local market and trading area", "is_active": true},
	{"id": 7, "name": "Water Station", "purok": "Purok 7", "description": "Community water supply", "is_active": true},
	{"id": 8, "name": "Community Center", "purok": "Purok 8", "description": "Multi-purpose community building", "is_active": true},
}

// GetPuroksController serves the purok dropdown. Cache first, then database,
// then the static fallback; this endpoint must keep the submission forms
// usable even with every backing service down.
func (lc *LookupController) GetPuroksController(c *fiber.Ctx) error {
	if cached, ok := lc.fromCache(c.Context(), PurokCacheKey); ok {
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		return c.SendString(cached)
	}

	puroks, err := lc.LookupRepo.GetPuroks()
	if err != nil {
		config.Logger.Warn("Purok lookup failed, serving fallback list", zap.Error(err))
		return c.JSON(fallbackPuroks)
	}

	lc.toCache(c.Context(), PurokCacheKey, puroks)
	return c.JSON(puroks)
}

// GetLandmarksController serves the landmark dropdown with the same
// cache/database/fallback ladder as puroks.
func (lc *LookupController) GetLandmarksController(c *fiber.Ctx) error {
	if cached, ok := lc.fromCache(c.Context(), LandmarkCacheKey); ok {
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		return c.SendString(cached)
	}

	landmarks, err := lc.LookupRepo.GetActiveLandmarks()
	if err != nil {
		config.Logger.Warn("Landmark lookup failed, serving fallback list", zap.Error(err))
		return c.JSON(fallbackLandmarks)
	}

	lc.toCache(c.Context(), LandmarkCacheKey, landmarks)
	return c.JSON(landmarks)
}

func (lc *LookupController) fromCache(ctx context.Context, key string) (string, bool) {
	if lc.RedisClient == nil {
		return "", false
	}
	cached, err := lc.RedisClient.Get(ctx, key).Result()
	if err != nil {
		if err != redis.Nil {
			config.Logger.Warn("Lookup cache read failed", zap.String("key", key), zap.Error(err))
		}
		return "", false
	}
	return cached, true
}

func (lc *LookupController) toCache(ctx context.Context, key string, value interface{}) {
	if lc.RedisClient == nil {
		return
	}
	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := lc.RedisClient.Set(ctx, key, data, lookupCacheTTL).Err(); err != nil {
		config.Logger.Warn("Lookup cache write failed", zap.String("key", key), zap.Error(err))
	}
}
