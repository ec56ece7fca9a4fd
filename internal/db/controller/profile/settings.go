// Package profile persists the barcode settings document of a profile.
// A profile is the opaque id a browser carries in its cookie.
package profile

import (
	"encoding/json"
	"errors"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/barcode-maker/barcode-maker/internal/db/controller/setting"
	"github.com/barcode-maker/barcode-maker/internal/settings"
)

const (
	// SettingKeyPrefix prefixes the setting name of every profile document.
	SettingKeyPrefix = "barcode_settings:"
)

// ErrProfileEmpty is returned for an empty profile id.
var ErrProfileEmpty = errors.New("profile id cannot be empty")

// Key returns the setting name of a profile.
func Key(profileID string) string {
	return SettingKeyPrefix + profileID
}

// Load reads the settings document of a profile. Whatever shape was stored
// is passed through the migration shim; a profile without a record gets the
// defaults of initFormat.
func Load(db *gorm.DB, profileID, initFormat string) (settings.Document, error) {
	if profileID == "" {
		return settings.Document{}, ErrProfileEmpty
	}

	s, err := setting.Get(db, Key(profileID))
	if err != nil {
		if errors.Is(err, setting.ErrSettingNotFound) {
			return settings.NewDocument(initFormat), nil
		}

		return settings.Document{}, err
	}

	doc, err := settings.Migrate(s.Value, initFormat)
	if err != nil {
		// a broken record must not lock the user out, start over
		log.Warn().Err(err).Str("profile", profileID).Msg("stored barcode settings are unreadable, using defaults")
		return doc, nil
	}

	return doc, nil
}

// Save stores the settings document of a profile.
func Save(db *gorm.DB, profileID string, doc settings.Document) error {
	if profileID == "" {
		return ErrProfileEmpty
	}

	data, err := json.Marshal(doc)
	if err != nil {
		return err
	}

	_, err = setting.Set(db, Key(profileID), data)

	return err
}

// Reset drops the stored document of a profile. A profile without a record
// is already reset.
func Reset(db *gorm.DB, profileID string) error {
	if profileID == "" {
		return ErrProfileEmpty
	}

	err := setting.Delete(db, Key(profileID))
	if errors.Is(err, setting.ErrSettingNotFound) {
		return nil
	}

	return err
}

// Count returns the number of profiles with a stored document.
func Count(db *gorm.DB) (int64, error) {
	return setting.Count(db, SettingKeyPrefix)
}
