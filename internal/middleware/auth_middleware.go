package middleware

import (
	"strings"

	"lavka/internal/models"
	"lavka/internal/services"

	"github.com/gofiber/fiber/v2"
)

// userKey is the Locals slot the authenticated user is stored under.
const userKey = "user"

func unauthorized(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"error": fiber.Map{"code": fiber.StatusUnauthorized, "message": message},
	})
}

// TokenRequired checks the Authorization header for a valid bearer token
// and stashes the resolved user in the request Locals.
func TokenRequired(authService *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return unauthorized(c, "Authorization header is required")
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			return unauthorized(c, "Authorization header format must be 'Bearer <token>'")
		}

		user, err := authService.Authenticate(parts[1])
		if err != nil {
			return unauthorized(c, "Invalid token")
		}

		c.Locals(userKey, user)
		return c.Next()
	}
}

// StaffOnly rejects requests from non-staff users. Must run after
// TokenRequired.
func StaffOnly() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := UserFromCtx(c)
		if user == nil || !user.IsStaff {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": fiber.Map{"code": fiber.StatusForbidden, "message": "staff only"},
			})
		}
		return c.Next()
	}
}

// UserFromCtx returns the user stored by TokenRequired, or nil.
func UserFromCtx(c *fiber.Ctx) *models.User {
	user, _ := c.Locals(userKey).(*models.User)
	return user
}
