package dashboard

import (
	"github.com/gofiber/fiber/v2"

	"scholarflow/app/routes/auth"
	"scholarflow/app/services"
)

func SetupDashboardRoutes(app *fiber.App, svc *services.Service) {
	api := app.Group("/api/dashboard")
	api.Use(auth.AuthMiddleware)

	api.Get("/stats", func(c *fiber.Ctx) error { return GetDashboardStatsAPI(c, svc) })
}
