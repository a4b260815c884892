package utils

import (
	"fmt"
	"strings"

	"github.com/AshleyImmanuel/recovery-log/database"
	"github.com/AshleyImmanuel/recovery-log/models"
	courseModels "github.com/AshleyImmanuel/recovery-log/models/course"
)

// The payment ledger has no columns for contact or UPI details, so a
// submission packs them into the course field as
//
//	"<course> | WA: <whatsapp> | UPI: <upiId> | Name: <upiName>"
//
// Every read path that needs the course title back re-parses this string.
// Keep the format in lockstep between builder and parsers.
const (
	compositeDelimiter = " | "
	labelWhatsApp      = "WA:"
	labelUPI           = "UPI:"
	labelUPIName       = "Name:"
)

// BuildCompositeCourse packs a payment submission into the ledger's course field.
func BuildCompositeCourse(course, whatsapp, upiID, upiName string) string {
	return fmt.Sprintf("%s%s%s %s%s%s %s%s%s %s",
		course,
		compositeDelimiter, labelWhatsApp, whatsapp,
		compositeDelimiter, labelUPI, upiID,
		compositeDelimiter, labelUPIName, upiName,
	)
}

// CourseTitleFromComposite extracts the course title: everything before the
// first "|", trimmed. A plain title without delimiters is returned as-is.
func CourseTitleFromComposite(composite string) string {
	title, _, _ := strings.Cut(composite, "|")
	return strings.TrimSpace(title)
}

// WhatsAppFromComposite extracts the WhatsApp contact from a composite
// course string. Returns "" when the segment is absent.
func WhatsAppFromComposite(composite string) string {
	for _, segment := range strings.Split(composite, "|") {
		segment = strings.TrimSpace(segment)
		if strings.HasPrefix(segment, labelWhatsApp) {
			return strings.TrimSpace(strings.TrimPrefix(segment, labelWhatsApp))
		}
	}
	return ""
}

// MatchesCourseTitle reports whether an approved payment's course field
// grants the course with the given title. The match is exact equality of
// the parsed title, or a delimiter-bounded prefix against the raw field.
// Never a substring test: a payment for "Course Pro" must not unlock "Course".
func MatchesCourseTitle(composite, title string) bool {
	title = strings.TrimSpace(title)
	if title == "" {
		return false
	}
	if CourseTitleFromComposite(composite) == title {
		return true
	}
	return strings.HasPrefix(composite, title+" |")
}

// HasCourseAccess reports whether the user has an approved payment for the
// course title. Derived on every read; nothing is cached.
func HasCourseAccess(email, title string) (bool, error) {
	var payments []models.PaymentRequest
	err := database.Database.Db.
		Where("user_email = ? AND status = ?", email, models.PaymentStatusApproved).
		Find(&payments).Error
	if err != nil {
		return false, err
	}

	for _, p := range payments {
		if MatchesCourseTitle(p.Course, title) {
			return true, nil
		}
	}
	return false, nil
}

// SalesByTitle groups approved payments by their parsed course title
// (trimmed). Callers look up each course's trimmed title; titles with no
// approved payments are simply absent, so lookups default to zero.
func SalesByTitle(approved []models.PaymentRequest) map[string]int {
	counts := make(map[string]int, len(approved))
	for _, p := range approved {
		title := CourseTitleFromComposite(p.Course)
		if title == "" {
			continue
		}
		counts[title]++
	}
	return counts
}

// ActiveCourseTitles returns the set of current course titles, normalized
// by trim + lowercase. Payments whose parsed title is not in this set are
// orphaned (course deleted or renamed) and are hidden from user listings.
func ActiveCourseTitles() (map[string]bool, error) {
	var courses []courseModels.Course
	if err := database.Database.Db.Select("title").Find(&courses).Error; err != nil {
		return nil, err
	}

	titles := make(map[string]bool, len(courses))
	for _, c := range courses {
		titles[strings.ToLower(strings.TrimSpace(c.Title))] = true
	}
	return titles, nil
}
