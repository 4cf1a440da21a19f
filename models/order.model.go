package models

import (
	"time"

	"gorm.io/gorm"
)

// Order statuses managed from the admin panel.
const (
	OrderStatusPending   = "pending"
	OrderStatusConfirmed = "confirmed"
	OrderStatusDelivered = "delivered"
	OrderStatusCancelled = "cancelled"
)

// ValidOrderStatus reports whether status is a known order status.
func ValidOrderStatus(status string) bool {
	switch status {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// Order is the record written when a cart is dispatched to WhatsApp.
// Payment and confirmation happen over the chat, the admin panel only
// tracks status.
type Order struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	OrderNumber string `gorm:"size:36;uniqueIndex;not null" json:"order_number"`

	CustomerName     string `gorm:"size:100;not null" json:"customer_name"`
	CustomerWhatsApp string `gorm:"size:30;not null" json:"customer_whatsapp"`
	DeliveryAddress  string `gorm:"type:text;not null" json:"delivery_address"`

	TotalAmount int64  `gorm:"not null" json:"total_amount"` // whole Naira
	Status      string `gorm:"default:'pending';size:20" json:"status"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at"`

	// Relations
	Items []OrderItem `gorm:"foreignKey:OrderID" json:"items"`
}

// OrderItem snapshots one cart line at dispatch time.
type OrderItem struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	OrderID   uint `gorm:"index;not null" json:"order_id"`
	ProductID uint `gorm:"index" json:"product_id"`

	ProductName string `gorm:"size:255;not null" json:"product_name"`
	UnitPrice   int64  `gorm:"not null" json:"unit_price"`
	Quantity    int    `gorm:"not null" json:"quantity"`
	Subtotal    int64  `gorm:"not null" json:"subtotal"`
}
