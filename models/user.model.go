package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Name      string `gorm:"default:''" json:"name"`
	Email     string `gorm:"unique;not null" json:"email"`
	Mobile    string `gorm:"default:''" json:"mobile"`
	Role      string `gorm:"default:'USER'" json:"role"` // informational; admin access is decided by ADMIN_EMAIL
	Password  string `gorm:"not null" json:"-"`
	LastLogin time.Time
	IsDeleted bool `gorm:"default:false" json:"-"`
}
