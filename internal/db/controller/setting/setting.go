// Package setting provides access to the key-value settings table.
package setting

import (
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/barcode-maker/barcode-maker/internal/db/models"
)

const (
	nameQueryPattern = "name = ?"
)

var (
	// ErrSettingNotFound is returned when a setting is not found.
	ErrSettingNotFound = errors.New("setting not found")
	// ErrSettingNameEmpty is returned when a setting name is empty.
	ErrSettingNameEmpty = errors.New("setting name cannot be empty")
	// ErrPrefixEmpty is returned when a bulk operation is called without a name prefix.
	ErrPrefixEmpty = errors.New("setting name prefix cannot be empty")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)

// Get retrieves a setting by its name.
func Get(db *gorm.DB, name string) (*models.Setting, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	if name == "" {
		return nil, ErrSettingNameEmpty
	}

	var s models.Setting

	result := db.Where(nameQueryPattern, name).First(&s)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrSettingNotFound
		}

		return nil, result.Error
	}

	return &s, nil
}

// Set creates or replaces the value stored under name.
func Set(db *gorm.DB, name string, value []byte) (*models.Setting, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	if name == "" {
		return nil, ErrSettingNameEmpty
	}

	s := &models.Setting{Name: name, Value: value}

	result := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(s)
	if result.Error != nil {
		return nil, result.Error
	}

	return Get(db, name)
}

// Delete removes the setting stored under name.
func Delete(db *gorm.DB, name string) error {
	if db == nil {
		return ErrDBNil
	}

	if name == "" {
		return ErrSettingNameEmpty
	}

	result := db.Where(nameQueryPattern, name).Delete(&models.Setting{})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrSettingNotFound
	}

	return nil
}

// Count returns the number of settings whose name starts with prefix.
func Count(db *gorm.DB, prefix string) (int64, error) {
	if db == nil {
		return 0, ErrDBNil
	}

	if prefix == "" {
		return 0, ErrPrefixEmpty
	}

	var n int64

	result := db.Model(&models.Setting{}).Where("name LIKE ?", prefix+"%").Count(&n)

	return n, result.Error
}

// PurgeOlderThan deletes settings starting with prefix that were not updated since before.
func PurgeOlderThan(db *gorm.DB, prefix string, before time.Time) (int64, error) {
	if db == nil {
		return 0, ErrDBNil
	}

	if prefix == "" {
		return 0, ErrPrefixEmpty
	}

	result := db.Where("name LIKE ? AND updated_at < ?", prefix+"%", before).Delete(&models.Setting{})

	return result.RowsAffected, result.Error
}
