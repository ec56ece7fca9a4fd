// Package models contains database model definitions.
package models

import "time"

// Setting is a named blob in the key-value settings table.
type Setting struct {
	ID        uint64 `gorm:"primaryKey"`
	Name      string `gorm:"uniqueIndex;size:191"`
	Value     []byte
	CreatedAt time.Time
	UpdatedAt time.Time `gorm:"index"`
}
