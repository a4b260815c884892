package courseController

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/AshleyImmanuel/recovery-log/database"
	"github.com/AshleyImmanuel/recovery-log/middleware"
	courseModels "github.com/AshleyImmanuel/recovery-log/models/course"
	"github.com/AshleyImmanuel/recovery-log/utils"
	courseValidator "github.com/AshleyImmanuel/recovery-log/validators/course"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// AdminCreateCourse creates a course with its full curriculum
func AdminCreateCourse(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCourse").(*courseValidator.CourseRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	if taken, err := titleTaken(db, reqData.Title, 0); err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to check course title!", nil)
	} else if taken {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Course with this title already exists!", nil)
	}

	if field, msg := validateCurriculum(reqData.Milestones); msg != "" {
		return middleware.ValidationErrorResponse(c, map[string]string{field: msg})
	}

	course := courseModels.Course{
		Title:       reqData.Title,
		Price:       reqData.Price,
		Description: reqData.Description,
		Milestones:  buildMilestones(reqData.Milestones),
	}

	if err := db.Create(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course created successfully!", course)
}

// AdminUpdateCourse replaces a course's fields and entire curriculum with
// the submitted state. Existing milestones and videos are deleted and
// recreated inside one transaction; there is no merge.
func AdminUpdateCourse(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCourse").(*courseValidator.CourseRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var course courseModels.Course
	if err := db.Where("id = ?", reqData.ID).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	if taken, err := titleTaken(db, reqData.Title, course.ID); err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to check course title!", nil)
	} else if taken {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Course with this title already exists!", nil)
	}

	if field, msg := validateCurriculum(reqData.Milestones); msg != "" {
		return middleware.ValidationErrorResponse(c, map[string]string{field: msg})
	}

	tx := db.Begin()

	if err := deleteCurriculum(tx, course.ID); err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to replace curriculum!", nil)
	}

	course.Title = reqData.Title
	course.Price = reqData.Price
	course.Description = reqData.Description
	course.Milestones = buildMilestones(reqData.Milestones)

	if err := tx.Session(&gorm.Session{FullSaveAssociations: true}).Save(&course).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update course!", nil)
	}

	if err := tx.Commit().Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course updated successfully!", course)
}

// AdminDeleteCourse removes a course and cascades to its milestones and videos
func AdminDeleteCourse(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Query("id"))
	if err != nil || id < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
	}

	db := database.Database.Db

	var course courseModels.Course
	if err := db.Where("id = ?", id).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	tx := db.Begin()

	if err := deleteCurriculum(tx, course.ID); err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete course!", nil)
	}

	if err := tx.Delete(&course).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete course!", nil)
	}

	if err := tx.Commit().Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course deleted successfully!", nil)
}

// titleTaken reports whether another course already uses this title,
// compared trimmed and case-insensitively. excludeID skips the course
// being updated.
func titleTaken(db *gorm.DB, title string, excludeID uint) (bool, error) {
	normalized := strings.ToLower(strings.TrimSpace(title))

	var count int64
	query := db.Model(&courseModels.Course{}).
		Where("LOWER(TRIM(title)) = ?", normalized)
	if excludeID > 0 {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// validateCurriculum runs the per-video checks in submission order. All
// checks pass before anything persists; a single failure rejects the
// whole submission.
func validateCurriculum(milestones []courseValidator.MilestoneInput) (field, message string) {
	for mIndex, m := range milestones {
		for vIndex, v := range m.Videos {
			field = fmt.Sprintf("milestones[%d].videos[%d]", mIndex, vIndex)

			if strings.TrimSpace(v.Title) == "" {
				return field, "Video title is required!"
			}
			if v.URL == "" && v.VideoID == "" {
				return field, "Video needs a URL or a video id!"
			}
			if v.URL != "" && !utils.IsVideoURL(v.URL) {
				return field, fmt.Sprintf("%q is not a valid YouTube link!", v.URL)
			}
		}
	}
	return "", ""
}

// buildMilestones converts the submitted curriculum into model rows.
// Order is implicit in submission order. Video ids are derived from URLs
// when not supplied directly; failed extraction stores the raw URL.
func buildMilestones(inputs []courseValidator.MilestoneInput) []courseModels.Milestone {
	milestones := make([]courseModels.Milestone, 0, len(inputs))
	for mIndex, m := range inputs {
		videos := make([]courseModels.Video, 0, len(m.Videos))
		for vIndex, v := range m.Videos {
			videoID := v.VideoID
			if videoID == "" {
				videoID = utils.ExtractVideoID(v.URL)
			}
			videos = append(videos, courseModels.Video{
				Title:   v.Title,
				VideoID: videoID,
				Order:   vIndex,
			})
		}
		milestones = append(milestones, courseModels.Milestone{
			Title:  m.Title,
			Order:  mIndex,
			Videos: videos,
		})
	}
	return milestones
}

// deleteCurriculum removes every milestone and video belonging to the course
func deleteCurriculum(tx *gorm.DB, courseID uint) error {
	var milestoneIDs []uint
	if err := tx.Model(&courseModels.Milestone{}).
		Where("course_id = ?", courseID).
		Pluck("id", &milestoneIDs).Error; err != nil {
		return err
	}

	if len(milestoneIDs) > 0 {
		if err := tx.Where("milestone_id IN ?", milestoneIDs).
			Delete(&courseModels.Video{}).Error; err != nil {
			return err
		}
	}

	return tx.Where("course_id = ?", courseID).
		Delete(&courseModels.Milestone{}).Error
}
