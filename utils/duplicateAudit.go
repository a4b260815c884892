package utils

import (
	"log"
	"strings"

	"github.com/AshleyImmanuel/recovery-log/database"
	courseModels "github.com/AshleyImmanuel/recovery-log/models/course"

	"github.com/robfig/cron/v3"
)

// InitializeDuplicateAudit schedules the daily duplicate-title report.
// Duplicate titles should be impossible through the admin API, but rows
// created before the uniqueness check (or by hand) can still collide, and
// a collision silently splits entitlement and sales between the copies.
func InitializeDuplicateAudit() {
	log.Println("[DUPLICATE-AUDIT] Initializing duplicate course audit...")

	c := cron.New()

	// Run daily at 6 AM
	c.AddFunc("0 6 * * *", func() {
		log.Println("[DUPLICATE-AUDIT] Running daily duplicate course check...")
		ReportDuplicateCourses()
	})

	c.Start()
	log.Println("[DUPLICATE-AUDIT] Duplicate course audit started - runs daily at 6 AM")
}

// ReportDuplicateCourses logs every group of courses sharing a trimmed,
// case-insensitive title, and which copy a cleanup should keep (the one
// with the most curriculum content, oldest first on ties).
func ReportDuplicateCourses() {
	var courses []courseModels.Course
	if err := database.Database.Db.Preload("Milestones.Videos").Find(&courses).Error; err != nil {
		log.Printf("[DUPLICATE-AUDIT] Error fetching courses: %v", err)
		return
	}

	grouped := make(map[string][]courseModels.Course)
	for _, c := range courses {
		key := strings.ToLower(strings.TrimSpace(c.Title))
		grouped[key] = append(grouped[key], c)
	}

	duplicates := 0
	for title, group := range grouped {
		if len(group) < 2 {
			continue
		}
		duplicates++

		keep := group[0]
		keepScore := curriculumScore(keep)
		for _, c := range group[1:] {
			score := curriculumScore(c)
			if score > keepScore || (score == keepScore && c.CreatedAt.Before(keep.CreatedAt)) {
				keep, keepScore = c, score
			}
		}

		log.Printf("[DUPLICATE-AUDIT] %d courses share the title %q; keep id=%d (%d curriculum items)",
			len(group), title, keep.ID, keepScore)
	}

	if duplicates == 0 {
		log.Println("[DUPLICATE-AUDIT] No duplicate course titles found.")
	}
}

func curriculumScore(c courseModels.Course) int {
	score := len(c.Milestones)
	for _, m := range c.Milestones {
		score += len(m.Videos)
	}
	return score
}
