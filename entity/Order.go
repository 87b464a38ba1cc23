package entity

import (
	"gorm.io/gorm"
)

type Order struct {
	gorm.Model
	Status OrderStatus `gorm:"not null;default:pending" json:"status"`
	// Snapshot total computed once at creation; status changes never
	// recompute it.
	TotalAmount int64  `json:"total_amount"`
	Notes       string `json:"notes"`

	TableID uint  `gorm:"index;not null" json:"table_id"`
	Table   Table `json:"-"`

	OrderItems []OrderItem `json:"-"`
}
