package middleware

import (
	"github.com/AshleyImmanuel/recovery-log/config"

	"github.com/gofiber/fiber/v2"
)

// AdminOnly guards admin routes. The admin is a single configured identity:
// the session email must equal ADMIN_EMAIL exactly. Runs after JWTMiddleware.
func AdminOnly(c *fiber.Ctx) error {
	email, ok := c.Locals("email").(string)
	if !ok || email == "" {
		return JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	if config.AppConfig.AdminEmail == "" || email != config.AppConfig.AdminEmail {
		return JsonResponse(c, fiber.StatusForbidden, false, "Access denied! Admin only.", nil)
	}

	return c.Next()
}
