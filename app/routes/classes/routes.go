package classes

import (
	"github.com/gofiber/fiber/v2"

	"scholarflow/app/models"
	"scholarflow/app/routes/auth"
	"scholarflow/app/services"
)

func SetupClassesRoutes(app *fiber.App, svc *services.Service) {
	api := app.Group("/api/classes")
	api.Use(auth.AuthMiddleware)

	api.Get("/", func(c *fiber.Ctx) error { return GetClassesAPI(c, svc) })

	admin := api.Group("", auth.RoleMiddleware(models.RoleAdmin))
	admin.Post("/", func(c *fiber.Ctx) error { return SaveClassAPI(c, svc) })
	admin.Delete("/:id", func(c *fiber.Ctx) error { return DeleteClassAPI(c, svc) })
}
