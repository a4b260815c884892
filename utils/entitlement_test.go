package utils

import (
	"testing"

	"github.com/AshleyImmanuel/recovery-log/models"

	"github.com/stretchr/testify/assert"
)

func TestBuildCompositeCourseFormat(t *testing.T) {
	got := BuildCompositeCourse("Alpha", "+911234567890", "a@bank", "A")
	assert.Equal(t, "Alpha | WA: +911234567890 | UPI: a@bank | Name: A", got)
}

func TestCourseTitleFromComposite(t *testing.T) {
	tests := []struct {
		name      string
		composite string
		want      string
	}{
		{"full composite", "Alpha | WA: +91 | UPI: a@bank | Name: A", "Alpha"},
		{"plain title", "Alpha", "Alpha"},
		{"padded title", "  Alpha  | WA: +91", "Alpha"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CourseTitleFromComposite(tt.composite))
		})
	}
}

func TestWhatsAppFromComposite(t *testing.T) {
	composite := BuildCompositeCourse("Alpha", "+911234567890", "a@bank", "A")
	assert.Equal(t, "+911234567890", WhatsAppFromComposite(composite))
	assert.Equal(t, "", WhatsAppFromComposite("Alpha"))
}

func TestMatchesCourseTitle(t *testing.T) {
	tests := []struct {
		name      string
		composite string
		title     string
		want      bool
	}{
		{"exact title", "Alpha", "Alpha", true},
		{"composite match", "Alpha | WA: +91 | UPI: a@bank | Name: A", "Alpha", true},
		{"prefix course must not unlock", "Course Pro | WA: +91", "Course", false},
		{"longer course not unlocked by shorter", "Course | WA: +91", "Course Pro", false},
		{"different course", "Beta | WA: +91", "Alpha", false},
		{"title padded in catalog", "Alpha | WA: +91", " Alpha ", true},
		{"empty title never matches", "Alpha | WA: +91", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MatchesCourseTitle(tt.composite, tt.title))
		})
	}
}

func TestSalesByTitle(t *testing.T) {
	approved := []models.PaymentRequest{
		{Course: "X | WA: 1"},
		{Course: "X | WA: 2 | UPI: b@bank | Name: B"},
		{Course: "Y"},
		{Course: ""},
	}

	counts := SalesByTitle(approved)

	assert.Equal(t, 2, counts["X"])
	assert.Equal(t, 1, counts["Y"])
	assert.Equal(t, 0, counts["Z"]) // absent titles default to zero
}
