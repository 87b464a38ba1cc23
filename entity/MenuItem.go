package entity

import (
	"gorm.io/gorm"
)

type MenuItem struct {
	gorm.Model
	Name        string `gorm:"not null" json:"name"`
	Description string `json:"description"`
	// Price in the smallest currency unit. Copied into OrderItem.UnitPrice
	// at order time; changing it never touches historical orders.
	Price     int64  `gorm:"not null" json:"price"`
	Image     string `json:"image"`
	Available bool   `gorm:"default:true" json:"available"`
	SortOrder int    `gorm:"default:0" json:"sort_order"`

	CategoryID uint     `json:"category_id"`
	Category   Category `json:"-"`

	OrderItems []OrderItem `json:"-"`
}
