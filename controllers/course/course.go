package courseController

import (
	"strconv"
	"strings"

	"github.com/AshleyImmanuel/recovery-log/database"
	"github.com/AshleyImmanuel/recovery-log/middleware"
	"github.com/AshleyImmanuel/recovery-log/models"
	courseModels "github.com/AshleyImmanuel/recovery-log/models/course"
	"github.com/AshleyImmanuel/recovery-log/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// GetAllCourses returns the public catalog: every course with its ordered
// curriculum and a sales figure derived from approved payments. Courses
// sharing a title are collapsed to the first occurrence.
func GetAllCourses(c *fiber.Ctx) error {
	db := database.Database.Db

	var courses []courseModels.Course
	if err := db.
		Preload("Milestones", func(db *gorm.DB) *gorm.DB { return db.Order("display_order asc") }).
		Preload("Milestones.Videos", func(db *gorm.DB) *gorm.DB { return db.Order("display_order asc") }).
		Order("created_at desc").
		Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	var approved []models.PaymentRequest
	if err := db.
		Where("status = ?", models.PaymentStatusApproved).
		Find(&approved).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch payments!", nil)
	}

	salesByTitle := utils.SalesByTitle(approved)

	// First occurrence wins when titles collide
	seen := make(map[string]bool, len(courses))
	result := make([]courseModels.Course, 0, len(courses))
	for _, course := range courses {
		key := strings.ToLower(strings.TrimSpace(course.Title))
		if seen[key] {
			continue
		}
		seen[key] = true

		course.Sales = salesByTitle[strings.TrimSpace(course.Title)]
		result = append(result, course)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", result)
}

// GetCourseDetails returns a single course with its curriculum and a
// hasAccess flag derived from the caller's approved payments. Anonymous
// callers simply get hasAccess=false.
func GetCourseDetails(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil || id < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
	}

	var course courseModels.Course
	if err := database.Database.Db.
		Preload("Milestones", func(db *gorm.DB) *gorm.DB { return db.Order("display_order asc") }).
		Preload("Milestones.Videos", func(db *gorm.DB) *gorm.DB { return db.Order("display_order asc") }).
		Where("id = ?", id).
		First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	hasAccess := false
	if email, ok := c.Locals("email").(string); ok && email != "" {
		hasAccess, err = utils.HasCourseAccess(email, course.Title)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to check access!", nil)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course fetched successfully!", fiber.Map{
		"course":    course,
		"hasAccess": hasAccess,
	})
}
