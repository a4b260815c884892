package models

import "gorm.io/gorm"

// ContactMessage is a message submitted through the public contact form
type ContactMessage struct {
	gorm.Model
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `gorm:"type:text" json:"message"`
	IsRead  bool   `gorm:"default:false" json:"is_read"`
}
