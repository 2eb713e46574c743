package middleware

import (
	"github.com/gofiber/fiber/v2"

	"Attendance-Tracker/models"
)

// StaffMiddleware gates administrator routes. Staff and superuser accounts
// pass; everyone else gets a 403.
func StaffMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, ok := c.Locals("user").(*models.Claims)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Not authenticated or corrupted session data"})
		}

		if !claims.IsStaff && !claims.IsSuperuser {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Access denied. Staff permission required"})
		}

		return c.Next()
	}
}
