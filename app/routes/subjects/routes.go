package subjects

import (
	"github.com/gofiber/fiber/v2"

	"scholarflow/app/models"
	"scholarflow/app/routes/auth"
	"scholarflow/app/services"
)

func SetupSubjectsRoutes(app *fiber.App, svc *services.Service) {
	api := app.Group("/api/subjects")
	api.Use(auth.AuthMiddleware)

	api.Get("/", func(c *fiber.Ctx) error { return GetSubjectsAPI(c, svc) })

	admin := api.Group("", auth.RoleMiddleware(models.RoleAdmin))
	admin.Post("/", func(c *fiber.Ctx) error { return SaveSubjectAPI(c, svc) })
	admin.Delete("/:id", func(c *fiber.Ctx) error { return DeleteSubjectAPI(c, svc) })
}
