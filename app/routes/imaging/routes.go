package imaging

import (
	"github.com/gofiber/fiber/v2"

	"scholarflow/app/routes/auth"
)

func SetupImagingRoutes(app *fiber.App, client *Client) {
	api := app.Group("/api/imaging")
	api.Use(auth.AuthMiddleware)

	api.Post("/edit", func(c *fiber.Ctx) error { return EditImageAPI(c, client) })
}
