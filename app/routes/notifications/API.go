package notifications

import (
	"github.com/gofiber/fiber/v2"

	"scholarflow/app/models"
	"scholarflow/app/services"
)

func GetNotificationsAPI(c *fiber.Ctx, svc *services.Service) error {
	user := c.Locals("user").(*models.User)

	items, err := svc.GetNotifications(user)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"notifications": items,
		"count":         len(items),
	})
}

func MarkReadAPI(c *fiber.Ctx, svc *services.Service) error {
	if err := svc.MarkNotificationRead(c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Notification marked as read"})
}
