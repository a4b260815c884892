package courseController

import (
	"time"

	"github.com/AshleyImmanuel/recovery-log/database"
	"github.com/AshleyImmanuel/recovery-log/middleware"
	"github.com/AshleyImmanuel/recovery-log/models"
	courseModels "github.com/AshleyImmanuel/recovery-log/models/course"
	"github.com/AshleyImmanuel/recovery-log/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/now"
)

// AdminDashboardStats returns headline numbers for the admin console
func AdminDashboardStats(c *fiber.Ctx) error {
	db := database.Database.Db

	var totalCourses int64
	if err := db.Model(&courseModels.Course{}).Count(&totalCourses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch stats!", nil)
	}

	countByStatus := func(status string) int64 {
		var n int64
		db.Model(&models.PaymentRequest{}).Where("status = ?", status).Count(&n)
		return n
	}

	todayStart := now.BeginningOfDay()
	monthStart := now.BeginningOfMonth()

	countSince := func(since time.Time) int64 {
		var n int64
		db.Model(&models.PaymentRequest{}).Where("created_at >= ?", since).Count(&n)
		return n
	}

	// Approved sales grouped by course title for the revenue panel
	var approved []models.PaymentRequest
	if err := db.Where("status = ?", models.PaymentStatusApproved).Find(&approved).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch stats!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Stats fetched successfully!", fiber.Map{
		"courses": totalCourses,
		"payments": fiber.Map{
			"pending":   countByStatus(models.PaymentStatusPending),
			"approved":  countByStatus(models.PaymentStatusApproved),
			"rejected":  countByStatus(models.PaymentStatusRejected),
			"today":     countSince(todayStart),
			"thisMonth": countSince(monthStart),
		},
		"salesByCourse": utils.SalesByTitle(approved),
	})
}
