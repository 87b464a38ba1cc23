package entity

import (
	"time"

	"gorm.io/gorm"
)

type WaiterCall struct {
	gorm.Model
	Status CallStatus `gorm:"not null;default:pending" json:"status"`
	// Set only while Status == resolved.
	ResolvedAt *time.Time `json:"resolved_at"`

	TableID uint  `gorm:"index;not null" json:"table_id"`
	Table   Table `json:"-"`
}
