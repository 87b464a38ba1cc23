package entity

import (
	"gorm.io/gorm"
)

type OrderItem struct {
	gorm.Model
	Quantity int `gorm:"not null" json:"quantity"`
	// Price snapshot taken at order creation.
	UnitPrice int64  `gorm:"not null" json:"unit_price"`
	Notes     string `json:"notes"`

	OrderID uint  `gorm:"index;not null" json:"order_id"`
	Order   Order `json:"-"`

	MenuItemID uint     `json:"menu_item_id"`
	MenuItem   MenuItem `json:"-"` // preload only when the item name is needed
}
