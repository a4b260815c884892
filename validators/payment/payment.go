package paymentValidator

import (
	"strings"

	"github.com/AshleyImmanuel/recovery-log/middleware"
	"github.com/AshleyImmanuel/recovery-log/models"

	"github.com/gofiber/fiber/v2"
)

// SubmitPayment checks the five required submission fields. All of them
// must be present; the course string feeds the composite encoding and the
// rest identify the payer for manual verification.
func SubmitPayment() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Course        string `json:"course"`
			Whatsapp      string `json:"whatsapp"`
			TransactionID string `json:"transactionId"`
			UpiName       string `json:"upiName"`
			UpiID         string `json:"upiId"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Course) == "" {
			errors["course"] = "Course is required!"
		}
		if strings.TrimSpace(reqData.Whatsapp) == "" {
			errors["whatsapp"] = "WhatsApp number is required!"
		}
		if strings.TrimSpace(reqData.TransactionID) == "" {
			errors["transactionId"] = "Transaction id is required!"
		}
		if strings.TrimSpace(reqData.UpiName) == "" {
			errors["upiName"] = "UPI name is required!"
		}
		if strings.TrimSpace(reqData.UpiID) == "" {
			errors["upiId"] = "UPI id is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedPayment", reqData)
		return c.Next()
	}
}

// ReviewPayment checks the admin review payload: a payment id and a
// terminal status. Pending is not a reviewable target.
func ReviewPayment() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			ID     uint   `json:"id"`
			Status string `json:"status"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.ID == 0 {
			errors["id"] = "Payment id is required!"
		}
		if reqData.Status != models.PaymentStatusApproved && reqData.Status != models.PaymentStatusRejected {
			errors["status"] = "Status must be approved or rejected!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedReview", reqData)
		return c.Next()
	}
}
