package course

import "gorm.io/gorm"

// Course is one sellable course with its ordered curriculum.
//
// Titles are unique case-insensitively after trimming; the admin handlers
// enforce this at write time. Sales is a stored counter touched only by the
// payment-approval path; the catalog endpoints overwrite it per-request
// with a count derived from approved payments.
type Course struct {
	gorm.Model
	Title       string      `json:"title"`
	Price       string      `json:"price"` // display string, may carry a currency glyph
	Description string      `json:"description"`
	Sales       int         `json:"sales" gorm:"default:0"`
	Milestones  []Milestone `json:"milestones" gorm:"constraint:OnDelete:CASCADE"`
}
