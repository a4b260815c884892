package courseRoutes

import (
	controllers "github.com/AshleyImmanuel/recovery-log/controllers/course"
	"github.com/AshleyImmanuel/recovery-log/middleware"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes sets up the public catalog routes. The detail route
// takes an optional session so it can report per-user access.
func SetupCourseRoutes(app *fiber.App) {
	courseGroup := app.Group("/courses")

	courseGroup.Get("/", controllers.GetAllCourses)
	courseGroup.Get("/:id", middleware.OptionalJWTMiddleware, controllers.GetCourseDetails)
}
