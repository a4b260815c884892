package paymentRoutes

import (
	controllers "github.com/AshleyImmanuel/recovery-log/controllers/payment"
	"github.com/AshleyImmanuel/recovery-log/middleware"
	validators "github.com/AshleyImmanuel/recovery-log/validators/payment"

	"github.com/gofiber/fiber/v2"
)

// SetupPaymentRoutes sets up user payment submission/listing and the
// unauthenticated status lookup
func SetupPaymentRoutes(app *fiber.App) {
	paymentGroup := app.Group("/payments")

	paymentGroup.Post("/", middleware.JWTMiddleware, validators.SubmitPayment(), controllers.SubmitPayment)
	paymentGroup.Get("/", middleware.JWTMiddleware, controllers.GetMyPayments)

	app.Get("/status", controllers.GetPaymentStatus)
}

// SetupAdminPaymentRoutes sets up payment review routes
func SetupAdminPaymentRoutes(app *fiber.App) {
	adminGroup := app.Group("/admin/payments", middleware.JWTMiddleware, middleware.AdminOnly)

	adminGroup.Get("/", controllers.AdminListPayments)
	adminGroup.Put("/", validators.ReviewPayment(), controllers.AdminReviewPayment)
}
