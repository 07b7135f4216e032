package audit

import (
	"github.com/gofiber/fiber/v2"

	"scholarflow/app/models"
	"scholarflow/app/services"
)

// GetAuditLogsAPI returns the trail newest first. Admin only.
func GetAuditLogsAPI(c *fiber.Ctx, svc *services.Service) error {
	user := c.Locals("user").(*models.User)

	logs, err := svc.GetAuditLogs(user)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"logs":  logs,
		"count": len(logs),
	})
}
