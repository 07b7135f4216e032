package notifications

import (
	"github.com/gofiber/fiber/v2"

	"scholarflow/app/routes/auth"
	"scholarflow/app/services"
)

func SetupNotificationsRoutes(app *fiber.App, svc *services.Service) {
	api := app.Group("/api/notifications")
	api.Use(auth.AuthMiddleware)

	api.Get("/", func(c *fiber.Ctx) error { return GetNotificationsAPI(c, svc) })
	api.Post("/:id/read", func(c *fiber.Ctx) error { return MarkReadAPI(c, svc) })
}
