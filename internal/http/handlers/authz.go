package handlers

import (
	"strings"

	"driveline/internal/apperr"
	"driveline/internal/domain"
	applog "driveline/internal/log"
	"driveline/internal/services"

	"github.com/gofiber/fiber/v2"
)

func bearerToken(c *fiber.Ctx) string {
	h := c.Get(fiber.HeaderAuthorization)
	if strings.HasPrefix(h, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
	}
	return ""
}

// RequireAdmin gates inventory mutations behind an admin bearer token.
func RequireAdmin(auth *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		u, err := auth.CurrentUser(bearerToken(c))
		if err != nil {
			applog.Security(c, "access.denied.token", nil)
			return fail(c, "authz", err)
		}
		if u.Role != domain.RoleAdmin {
			applog.Security(c, "access.denied.admin", map[string]any{"user": u.Email})
			return fail(c, "authz", apperr.Forbidden("access denied"))
		}
		c.Locals("user", u)
		return c.Next()
	}
}
