package attendance

import (
	"github.com/gofiber/fiber/v2"

	"scholarflow/app/models"
	"scholarflow/app/routes/auth"
	"scholarflow/app/services"
)

func SetupAttendanceRoutes(app *fiber.App, svc *services.Service) {
	api := app.Group("/api/attendance")
	api.Use(auth.AuthMiddleware)

	api.Get("/class/:classId/students", func(c *fiber.Ctx) error { return GetStudentsByClassAPI(c, svc) })
	api.Get("/class/:classId/date/:date/session/:sessionNumber", func(c *fiber.Ctx) error { return FindSessionAPI(c, svc) })
	api.Post("/", func(c *fiber.Ctx) error { return SaveAttendanceAPI(c, svc) })

	api.Post("/unlock/:sessionId", auth.RoleMiddleware(models.RoleAdmin), func(c *fiber.Ctx) error {
		return UnlockSessionAPI(c, svc)
	})
}
