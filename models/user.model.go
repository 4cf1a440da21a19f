package models

import (
	"time"

	"gorm.io/gorm"
)

// User is a staff account for the admin panel and support chat. The
// storefront itself has no public accounts.
type User struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Email    string `gorm:"unique;not null;size:100" json:"email"`
	Password string `gorm:"not null" json:"-"`
	FullName string `gorm:"size:100" json:"full_name"`

	Role string `gorm:"default:'agent';size:20" json:"role"` // admin, agent

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at"`
}
