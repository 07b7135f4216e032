package reports

import (
	"github.com/gofiber/fiber/v2"

	"scholarflow/app/routes/auth"
	"scholarflow/app/services"
)

func SetupReportsRoutes(app *fiber.App, svc *services.Service) {
	api := app.Group("/api/reports")
	api.Use(auth.AuthMiddleware)

	api.Get("/", func(c *fiber.Ctx) error { return GetReportAPI(c, svc) })
}
