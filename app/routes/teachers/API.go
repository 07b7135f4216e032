package teachers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"scholarflow/app/models"
	"scholarflow/app/services"
)

var validate = validator.New()

func GetTeachersAPI(c *fiber.Ctx, svc *services.Service) error {
	teachers, err := svc.GetAllTeachers()
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"teachers": teachers, "count": len(teachers)})
}

func SaveTeacherAPI(c *fiber.Ctx, svc *services.Service) error {
	type TeacherRequest struct {
		ID    string `json:"id"`
		Name  string `json:"name" validate:"required"`
		Email string `json:"email" validate:"required,email"`
		Phone string `json:"phone"`
	}

	var req TeacherRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Name and a valid email are required"})
	}

	user := c.Locals("user").(*models.User)
	teacher, err := svc.SaveTeacher(user, &models.User{
		ID:    req.ID,
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
		Role:  models.RoleTeacher,
	})
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"message": "Teacher saved successfully",
		"teacher": teacher,
	})
}

func DeleteTeacherAPI(c *fiber.Ctx, svc *services.Service) error {
	user := c.Locals("user").(*models.User)
	if err := svc.DeleteTeacher(user, c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Teacher deleted successfully"})
}
