package subjects

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"scholarflow/app/models"
	"scholarflow/app/services"
)

var validate = validator.New()

func GetSubjectsAPI(c *fiber.Ctx, svc *services.Service) error {
	user := c.Locals("user").(*models.User)
	subjects, err := svc.GetSubjects(user)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"subjects": subjects, "count": len(subjects)})
}

func SaveSubjectAPI(c *fiber.Ctx, svc *services.Service) error {
	type SubjectRequest struct {
		ID        string `json:"id"`
		Name      string `json:"name" validate:"required"`
		Code      string `json:"code" validate:"required"`
		TeacherID string `json:"teacher_id"`
	}

	var req SubjectRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Name and code are required"})
	}

	user := c.Locals("user").(*models.User)
	subject, err := svc.SaveSubject(user, &models.Subject{
		ID:        req.ID,
		Name:      req.Name,
		Code:      req.Code,
		TeacherID: req.TeacherID,
	})
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"message": "Subject saved successfully",
		"subject": subject,
	})
}

func DeleteSubjectAPI(c *fiber.Ctx, svc *services.Service) error {
	user := c.Locals("user").(*models.User)
	if err := svc.DeleteSubject(user, c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Subject deleted successfully"})
}
