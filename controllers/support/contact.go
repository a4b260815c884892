package supportController

import (
	"github.com/AshleyImmanuel/recovery-log/database"
	"github.com/AshleyImmanuel/recovery-log/middleware"
	"github.com/AshleyImmanuel/recovery-log/models"

	"github.com/gofiber/fiber/v2"
)

// SubmitContactMessage stores a message from the public contact form
func SubmitContactMessage(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedContact").(*struct {
		Name    string `json:"name"`
		Email   string `json:"email"`
		Message string `json:"message"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	message := models.ContactMessage{
		Name:    reqData.Name,
		Email:   reqData.Email,
		Message: reqData.Message,
	}

	if err := database.Database.Db.Create(&message).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit message!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Message sent successfully!", fiber.Map{
		"id": message.ID,
	})
}

// AdminListContactMessages lists contact messages, newest first
func AdminListContactMessages(c *fiber.Ctx) error {
	var messages []models.ContactMessage
	if err := database.Database.Db.
		Order("created_at desc").
		Find(&messages).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch messages!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Messages fetched successfully!", messages)
}
