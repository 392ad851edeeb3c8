package models

import (
	"time"
)

// OverrideModel is the GORM model for the address_overrides table. It is a
// plain key-value row: Key is the namespaced storage key and Value is the
// JSON payload. The payload is decoded tolerantly on read; this table never
// rejects what an older build wrote.
type OverrideModel struct {
	Key       string    `gorm:"primaryKey;type:varchar(64)"`
	OrderID   int64     `gorm:"column:order_id;not null;index"`
	Value     string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for OverrideModel
func (OverrideModel) TableName() string {
	return "address_overrides"
}
