package routes

import (
	"barangay-mancruz-backend/bleve/controllers"

	"github.com/gofiber/fiber/v2"
)

func InitBleveRoutes(app *fiber.App, controller *controllers.SearchController) {
	api := app.Group("/api/v1/search")

	api.Get("/reports", controller.SearchReportsController)
}
