package attendance

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"scholarflow/app/models"
	"scholarflow/app/services"
)

var validate = validator.New()

func GetStudentsByClassAPI(c *fiber.Ctx, svc *services.Service) error {
	classID := c.Params("classId")
	if classID == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Class ID is required"})
	}

	students, err := svc.GetStudentsByClass(classID)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"students": students,
		"count":    len(students),
	})
}

func FindSessionAPI(c *fiber.Ctx, svc *services.Service) error {
	classID := c.Params("classId")
	date := c.Params("date")
	sessionNumber, err := c.ParamsInt("sessionNumber")
	if classID == "" || date == "" || err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Class ID, date and session number are required"})
	}

	session, err := svc.FindSession(classID, date, sessionNumber)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"session": session})
}

func SaveAttendanceAPI(c *fiber.Ctx, svc *services.Service) error {
	var req services.SaveAttendanceInput
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	user := c.Locals("user").(*models.User)
	session, err := svc.SaveAttendance(user, req)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"message": "Attendance saved successfully",
		"session": session,
	})
}

func UnlockSessionAPI(c *fiber.Ctx, svc *services.Service) error {
	type UnlockRequest struct {
		Reason string `json:"reason" validate:"required"`
	}

	sessionID := c.Params("sessionId")
	if sessionID == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Session ID is required"})
	}

	var req UnlockRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	user := c.Locals("user").(*models.User)
	if err := svc.UnlockSession(user, sessionID, req.Reason); err != nil {
		return err
	}

	return c.JSON(fiber.Map{"message": "Session unlocked successfully"})
}
