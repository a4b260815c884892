package course

import "gorm.io/gorm"

// Milestone represents a section within a course
type Milestone struct {
	gorm.Model
	CourseID uint    `json:"course_id" gorm:"index;not null"`
	Title    string  `json:"title"`
	Order    int     `json:"order" gorm:"column:display_order;default:0"` // position within the course
	Videos   []Video `json:"videos" gorm:"constraint:OnDelete:CASCADE"`
}
