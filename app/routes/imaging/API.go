package imaging

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// EditImageAPI proxies an image-edit request to the generative model. Any
// upstream failure is reported as a generic error.
func EditImageAPI(c *fiber.Ctx, client *Client) error {
	type EditRequest struct {
		ImageBase64 string `json:"image_base64" validate:"required"`
		MimeType    string `json:"mime_type" validate:"required"`
		Prompt      string `json:"prompt" validate:"required"`
	}

	var req EditRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Image, mime type and prompt are required"})
	}

	result, err := client.EditImage(req.ImageBase64, req.MimeType, req.Prompt)
	if err != nil {
		return c.Status(502).JSON(fiber.Map{"error": "Image generation failed"})
	}
	if result == "" {
		return c.Status(502).JSON(fiber.Map{"error": "Image generation returned no image"})
	}

	return c.JSON(fiber.Map{"image": result})
}
