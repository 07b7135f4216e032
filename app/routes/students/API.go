package students

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"scholarflow/app/models"
	"scholarflow/app/services"
)

var validate = validator.New()

func GetStudentsAPI(c *fiber.Ctx, svc *services.Service) error {
	if classID := c.Query("class_id"); classID != "" {
		students, err := svc.GetStudentsByClass(classID)
		if err != nil {
			return err
		}
		return c.JSON(fiber.Map{"students": students, "count": len(students)})
	}

	students, err := svc.GetAllStudents()
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"students": students, "count": len(students)})
}

func SaveStudentAPI(c *fiber.Ctx, svc *services.Service) error {
	type StudentRequest struct {
		ID         string `json:"id"`
		Name       string `json:"name" validate:"required"`
		RollNumber string `json:"roll_number"`
		GradeLevel string `json:"grade_level"`
		ClassID    string `json:"class_id"`
		DOB        string `json:"dob"`
	}

	var req StudentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Student name is required"})
	}

	user := c.Locals("user").(*models.User)
	student, err := svc.SaveStudent(user, &models.Student{
		ID:         req.ID,
		Name:       req.Name,
		RollNumber: req.RollNumber,
		GradeLevel: req.GradeLevel,
		ClassID:    req.ClassID,
		DOB:        req.DOB,
	})
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"message": "Student saved successfully",
		"student": student,
	})
}

func DeleteStudentAPI(c *fiber.Ctx, svc *services.Service) error {
	user := c.Locals("user").(*models.User)
	if err := svc.DeleteStudent(user, c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Student deleted successfully"})
}
