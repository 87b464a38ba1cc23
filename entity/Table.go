package entity

import (
	"gorm.io/gorm"
)

type Table struct {
	gorm.Model
	TableNumber int         `gorm:"uniqueIndex;not null" json:"table_number"`
	Status      TableStatus `gorm:"not null;default:available" json:"status"`
	QRCode      string      `json:"qr_code"`

	// preload only when a table detail needs them
	Orders      []Order      `json:"-"`
	WaiterCalls []WaiterCall `json:"-"`
}
