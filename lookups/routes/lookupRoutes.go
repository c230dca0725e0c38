package routes

import (
	"barangay-mancruz-backend/lookups/controllers"
	"barangay-mancruz-backend/lookups/repositories"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
)

func LookupRouterInit(
	app *fiber.App,
	lookupRepository repositories.LookupRepository,
	redisClient *redis.Client,
) {
	lookupController := &controllers.LookupController{
		LookupRepo:  lookupRepository,
		RedisClient: redisClient,
	}

	lookup := app.Group("/api/v1/lookup")

	lookup.Get("/puroks", lookupController.GetPuroksController)
	lookup.Get("/landmarks", lookupController.GetLandmarksController)
}
