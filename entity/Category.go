package entity

import (
	"gorm.io/gorm"
)

type Category struct {
	gorm.Model
	Name        string `gorm:"not null" json:"name"`
	Description string `json:"description"`
	Image       string `json:"image"`
	SortOrder   int    `gorm:"default:0" json:"sort_order"`
	Active      bool   `gorm:"default:true" json:"active"`

	MenuItems []MenuItem `json:"-"`
}
