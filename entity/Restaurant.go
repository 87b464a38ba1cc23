package entity

import (
	"gorm.io/gorm"
)

// Restaurant is a singleton row (id 1).
type Restaurant struct {
	gorm.Model
	Name    string `gorm:"not null" json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Logo    string `json:"logo"`
	// Free-form settings blob, stored as JSON text.
	Settings string `json:"settings"`
}
