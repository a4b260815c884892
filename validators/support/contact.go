package supportValidator

import (
	"strings"

	"github.com/AshleyImmanuel/recovery-log/middleware"

	"github.com/gofiber/fiber/v2"
)

func SubmitContact() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Name    string `json:"name"`
			Email   string `json:"email"`
			Message string `json:"message"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Name) == "" {
			errors["name"] = "Name is required!"
		}
		if strings.TrimSpace(reqData.Email) == "" {
			errors["email"] = "Email is required!"
		} else if !strings.Contains(reqData.Email, "@") {
			errors["email"] = "Email is not valid!"
		}
		if strings.TrimSpace(reqData.Message) == "" {
			errors["message"] = "Message is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedContact", reqData)
		return c.Next()
	}
}
