package authRoutes

import (
	controllers "github.com/AshleyImmanuel/recovery-log/controllers/auth"
	validators "github.com/AshleyImmanuel/recovery-log/validators/auth"

	"github.com/gofiber/fiber/v2"
)

// SetupAuthRoutes sets up signup and login
func SetupAuthRoutes(app *fiber.App) {
	authGroup := app.Group("/auth")

	authGroup.Post("/signup", validators.Signup(), controllers.Signup)
	authGroup.Post("/login", validators.Login(), controllers.Login)
}
