package dashboard

import (
	"github.com/gofiber/fiber/v2"

	"scholarflow/app/models"
	"scholarflow/app/services"
)

// GetDashboardStatsAPI returns dashboard statistics scoped to the caller.
func GetDashboardStatsAPI(c *fiber.Ctx, svc *services.Service) error {
	user := c.Locals("user").(*models.User)

	stats, err := svc.GetDashboardStats(user)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    stats,
	})
}
