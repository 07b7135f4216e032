package classes

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"scholarflow/app/models"
	"scholarflow/app/services"
)

var validate = validator.New()

// GetClassesAPI lists classes scoped by role: admins see all, teachers only
// the classes assigned to them.
func GetClassesAPI(c *fiber.Ctx, svc *services.Service) error {
	user := c.Locals("user").(*models.User)
	classes, err := svc.GetClasses(user)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"classes": classes, "count": len(classes)})
}

func SaveClassAPI(c *fiber.Ctx, svc *services.Service) error {
	type ClassRequest struct {
		ID         string `json:"id"`
		Name       string `json:"name" validate:"required"`
		GradeLevel string `json:"grade_level" validate:"required"`
		TeacherID  string `json:"teacher_id"`
	}

	var req ClassRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Name and grade level are required"})
	}

	user := c.Locals("user").(*models.User)
	class, err := svc.SaveClass(user, &models.ClassGroup{
		ID:         req.ID,
		Name:       req.Name,
		GradeLevel: req.GradeLevel,
		TeacherID:  req.TeacherID,
	})
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"message": "Class saved successfully",
		"class":   class,
	})
}

func DeleteClassAPI(c *fiber.Ctx, svc *services.Service) error {
	user := c.Locals("user").(*models.User)
	if err := svc.DeleteClass(user, c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Class deleted successfully"})
}
