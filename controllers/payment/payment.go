package paymentController

import (
	"strings"

	"github.com/AshleyImmanuel/recovery-log/database"
	"github.com/AshleyImmanuel/recovery-log/middleware"
	"github.com/AshleyImmanuel/recovery-log/models"
	"github.com/AshleyImmanuel/recovery-log/utils"

	"github.com/gofiber/fiber/v2"
)

// SubmitPayment records a manual UPI payment submission as a pending
// ledger row. No entitlement is granted until an admin approves it.
func SubmitPayment(c *fiber.Ctx) error {
	email, ok := c.Locals("email").(string)
	if !ok || email == "" {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedPayment").(*struct {
		Course        string `json:"course"`
		Whatsapp      string `json:"whatsapp"`
		TransactionID string `json:"transactionId"`
		UpiName       string `json:"upiName"`
		UpiID         string `json:"upiId"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	payment := models.PaymentRequest{
		UserEmail:     email,
		Course:        utils.BuildCompositeCourse(reqData.Course, reqData.Whatsapp, reqData.UpiID, reqData.UpiName),
		TransactionID: reqData.TransactionID,
		Status:        models.PaymentStatusPending,
	}

	if err := database.Database.Db.Create(&payment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit payment!", nil)
	}

	utils.SendPaymentReceivedEmail(email, reqData.Course, reqData.TransactionID)

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Payment submitted for review!", fiber.Map{
		"id": payment.ID,
	})
}

// GetMyPayments lists the caller's submissions, hiding rows whose parsed
// course title no longer matches any current course (deleted or renamed
// courses orphan their payments silently).
func GetMyPayments(c *fiber.Ctx) error {
	email, ok := c.Locals("email").(string)
	if !ok || email == "" {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var payments []models.PaymentRequest
	if err := database.Database.Db.
		Where("user_email = ?", email).
		Order("created_at desc").
		Find(&payments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch payments!", nil)
	}

	activeTitles, err := utils.ActiveCourseTitles()
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	valid := make([]models.PaymentRequest, 0, len(payments))
	for _, p := range payments {
		title := strings.ToLower(utils.CourseTitleFromComposite(p.Course))
		if activeTitles[title] {
			valid = append(valid, p)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Payments fetched successfully!", valid)
}

// GetPaymentStatus is the open status lookup: every submission for the
// given email literal, newest first. No session and no ownership check.
func GetPaymentStatus(c *fiber.Ctx) error {
	email := c.Query("email")
	if email == "" {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Payments fetched successfully!", []models.PaymentRequest{})
	}

	var payments []models.PaymentRequest
	if err := database.Database.Db.
		Where("user_email = ?", email).
		Order("created_at desc").
		Find(&payments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch payments!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Payments fetched successfully!", payments)
}
