package middleware

import (
	"barangay-mancruz-backend/config"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

// InitCors applies CORS settings to the app
func InitCors(app *fiber.App) {
	app.Use(cors.New(cors.Config{
		AllowOrigins:     config.GetEnvOrDefault("CORS_ALLOW_ORIGINS", "http://localhost:3000"),
		AllowMethods:     "GET,POST,HEAD,PUT,DELETE,PATCH",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, X-Requested-With",
		AllowCredentials: true,
	}))
}
