package courseRoutes

import (
	controllers "github.com/AshleyImmanuel/recovery-log/controllers/course"
	"github.com/AshleyImmanuel/recovery-log/middleware"
	validators "github.com/AshleyImmanuel/recovery-log/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupAdminCourseRoutes sets up curriculum management routes
func SetupAdminCourseRoutes(app *fiber.App) {
	adminGroup := app.Group("/admin/courses", middleware.JWTMiddleware, middleware.AdminOnly)

	adminGroup.Post("/", validators.SaveCourse(), controllers.AdminCreateCourse)
	adminGroup.Put("/", validators.SaveCourse(), controllers.AdminUpdateCourse)
	adminGroup.Delete("/", controllers.AdminDeleteCourse)

	dashGroup := app.Group("/admin/dashboard", middleware.JWTMiddleware, middleware.AdminOnly)
	dashGroup.Get("/stats", controllers.AdminDashboardStats)
}
