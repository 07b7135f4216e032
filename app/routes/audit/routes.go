package audit

import (
	"github.com/gofiber/fiber/v2"

	"scholarflow/app/models"
	"scholarflow/app/routes/auth"
	"scholarflow/app/services"
)

func SetupAuditRoutes(app *fiber.App, svc *services.Service) {
	api := app.Group("/api/audit-logs")
	api.Use(auth.AuthMiddleware)
	api.Use(auth.RoleMiddleware(models.RoleAdmin))

	api.Get("/", func(c *fiber.Ctx) error { return GetAuditLogsAPI(c, svc) })
}
