package teachers

import (
	"github.com/gofiber/fiber/v2"

	"scholarflow/app/models"
	"scholarflow/app/routes/auth"
	"scholarflow/app/services"
)

func SetupTeachersRoutes(app *fiber.App, svc *services.Service) {
	api := app.Group("/api/teachers")
	api.Use(auth.AuthMiddleware)

	api.Get("/", func(c *fiber.Ctx) error { return GetTeachersAPI(c, svc) })

	admin := api.Group("", auth.RoleMiddleware(models.RoleAdmin))
	admin.Post("/", func(c *fiber.Ctx) error { return SaveTeacherAPI(c, svc) })
	admin.Delete("/:id", func(c *fiber.Ctx) error { return DeleteTeacherAPI(c, svc) })
}
