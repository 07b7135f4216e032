package students

import (
	"github.com/gofiber/fiber/v2"

	"scholarflow/app/models"
	"scholarflow/app/routes/auth"
	"scholarflow/app/services"
)

func SetupStudentsRoutes(app *fiber.App, svc *services.Service) {
	api := app.Group("/api/students")
	api.Use(auth.AuthMiddleware)

	api.Get("/", func(c *fiber.Ctx) error { return GetStudentsAPI(c, svc) })

	admin := api.Group("", auth.RoleMiddleware(models.RoleAdmin))
	admin.Post("/", func(c *fiber.Ctx) error { return SaveStudentAPI(c, svc) })
	admin.Delete("/:id", func(c *fiber.Ctx) error { return DeleteStudentAPI(c, svc) })
}
