package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"scholarflow/app/models"
	"scholarflow/app/services"
)

func SetupAuthRoutes(app *fiber.App, svc *services.Service) {
	api := app.Group("/api/auth")
	api.Post("/login", func(c *fiber.Ctx) error { return LoginAPI(c, svc) })
	api.Post("/logout", LogoutAPI)

	api.Use(AuthMiddleware)
	api.Get("/me", MeAPI)
}

// AuthMiddleware validates the JWT and sets the acting user on the request
// context.
func AuthMiddleware(c *fiber.Ctx) error {
	tokenString := c.Cookies("jwt_token")
	if tokenString == "" {
		header := c.Get("Authorization")
		if strings.HasPrefix(header, "Bearer ") {
			tokenString = strings.TrimPrefix(header, "Bearer ")
		}
	}
	if tokenString == "" {
		return c.Status(401).JSON(fiber.Map{"error": "No token found"})
	}

	claims, err := ValidateJWT(tokenString)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": "Invalid token"})
	}

	user := &models.User{
		ID:    claims.UserID,
		Name:  claims.Name,
		Email: claims.Email,
		Role:  claims.Role,
	}
	c.Locals("user_id", user.ID)
	c.Locals("user", user)

	return c.Next()
}

// RoleMiddleware gates a route group to the given roles.
func RoleMiddleware(allowed ...models.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := c.Locals("user").(*models.User)
		for _, role := range allowed {
			if user.Role == role {
				return c.Next()
			}
		}
		return c.Status(403).JSON(fiber.Map{"error": "Insufficient permissions"})
	}
}
