package middleware

import (
	"github.com/gofiber/fiber/v3"

	"github.com/andripeetso/group-calendar-scheduler/pkg/adminkey"
)

// AdminKeyHeader carries the derived admin key on admin routes.
const AdminKeyHeader = "X-Admin-Key"

// RequireAdmin gates a route group behind the admin key. With no secret
// configured the admin surface is closed entirely rather than left open.
func RequireAdmin(secret string) fiber.Handler {
	return func(c fiber.Ctx) error {
		if secret == "" {
			return ErrorResponse(c, fiber.StatusServiceUnavailable, "ADMIN_DISABLED",
				"Admin operations are disabled: no admin secret configured")
		}

		key := c.Get(AdminKeyHeader)
		if key == "" {
			return ErrorResponse(c, fiber.StatusUnauthorized, "UNAUTHORIZED",
				"Missing admin key")
		}
		if err := adminkey.Verify(key, secret); err != nil {
			return ErrorResponse(c, fiber.StatusForbidden, "FORBIDDEN",
				"Invalid admin key")
		}

		return c.Next()
	}
}
