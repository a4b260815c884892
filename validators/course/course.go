package courseValidator

import (
	"strings"

	"github.com/AshleyImmanuel/recovery-log/middleware"

	"github.com/gofiber/fiber/v2"
)

// VideoInput is one submitted video. Either URL or VideoID must be set;
// the admin controller derives the stored id.
type VideoInput struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	VideoID string `json:"videoId"`
}

// MilestoneInput is one submitted milestone with its videos in display order.
type MilestoneInput struct {
	Title  string       `json:"title"`
	Videos []VideoInput `json:"videos"`
}

// CourseRequest is the admin create/update payload. Milestones fully
// replace whatever the course currently has.
type CourseRequest struct {
	ID          uint             `json:"id"`
	Title       string           `json:"title"`
	Price       string           `json:"price"`
	Description string           `json:"description"`
	Milestones  []MilestoneInput `json:"milestones"`
}

func SaveCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CourseRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		// Validate Title
		if strings.TrimSpace(reqData.Title) == "" {
			errors["title"] = "Title is required!"
		}

		// Validate Price
		if strings.TrimSpace(reqData.Price) == "" {
			errors["price"] = "Price is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCourse", reqData)
		return c.Next()
	}
}
