package handlers

import (
	"strings"

	applog "stockroom/internal/log"
	"stockroom/internal/services"

	"github.com/gofiber/fiber/v2"
)

// RequireUser enforces a valid bearer token and stores the bound user id in
// c.Locals("userID"). Failures never reach the protected handler.
func RequireUser(auth *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if header == "" {
			applog.Security(c, "access.denied.notoken", nil)
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "authorization required"})
		}
		token := strings.TrimPrefix(header, "Bearer ")
		if token == header || token == "" {
			applog.Security(c, "access.denied.badheader", nil)
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "authorization must be 'Bearer <token>'"})
		}
		userID, err := auth.VerifyToken(token)
		if err != nil {
			applog.Security(c, "access.denied.badtoken", nil)
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid or expired token"})
		}
		c.Locals("userID", userID)
		return c.Next()
	}
}
