package supportRoutes

import (
	controllers "github.com/AshleyImmanuel/recovery-log/controllers/support"
	"github.com/AshleyImmanuel/recovery-log/middleware"
	validators "github.com/AshleyImmanuel/recovery-log/validators/support"

	"github.com/gofiber/fiber/v2"
)

// SetupSupportRoutes sets up the public contact form and its admin inbox
func SetupSupportRoutes(app *fiber.App) {
	app.Post("/contact", validators.SubmitContact(), controllers.SubmitContactMessage)

	app.Get("/admin/contact", middleware.JWTMiddleware, middleware.AdminOnly, controllers.AdminListContactMessages)
}
