package models

import (
	"time"

	"gorm.io/gorm"
)

// Product categories carried by the storefront.
const (
	CategoryBatteries   = "batteries"
	CategoryControllers = "controllers"
	CategoryInverters   = "inverters"
	CategoryPanels      = "panels"
)

// ValidCategory reports whether category is one of the storefront categories.
func ValidCategory(category string) bool {
	switch category {
	case CategoryBatteries, CategoryControllers, CategoryInverters, CategoryPanels:
		return true
	}
	return false
}

type Product struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"size:255;not null" json:"name"`
	Category string `gorm:"size:50;index;not null" json:"category"` // batteries, controllers, inverters, panels

	// Prices are whole Naira. OriginalPrice is the pre-discount price,
	// must be >= Price when set.
	Price         int64  `gorm:"not null" json:"price"`
	OriginalPrice *int64 `json:"original_price,omitempty"`

	ImageURL       string            `json:"image_url"`
	Description    string            `gorm:"type:text" json:"description"`
	Features       []string          `gorm:"serializer:json" json:"features"`
	Specifications map[string]string `gorm:"serializer:json" json:"specifications"`

	InStock bool    `gorm:"default:true" json:"in_stock"`
	Rating  float64 `json:"rating"` // 0-5
	Reviews int     `json:"reviews"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at"`
}
