package handler

import (
	"github.com/gofiber/fiber/v3"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/barcode-maker/barcode-maker/internal/config"
	"github.com/barcode-maker/barcode-maker/internal/db/controller/profile"
	"github.com/barcode-maker/barcode-maker/internal/export"
	"github.com/barcode-maker/barcode-maker/internal/settings"
)

// Env bundles the dependencies shared by all handlers.
type Env struct {
	Cfg       *config.Config
	DB        *gorm.DB
	Generator *export.Generator
}

// Service is the interface for a web handler service.
type Service interface {
	Init(app *fiber.App, env *Env)
}

// Valid reports whether env carries everything handlers rely on.
func (e *Env) Valid() bool {
	return e != nil && e.Cfg != nil && e.Generator != nil
}

// ProfileID returns the profile id the profile middleware stored for c.
func ProfileID(c fiber.Ctx) string {
	id, _ := c.Locals(LocalsProfileID).(string)
	return id
}

// LoadSettings returns the settings document of the requesting profile.
// Without a database or profile the defaults of format are returned.
func (e *Env) LoadSettings(c fiber.Ctx, format string) settings.Document {
	id := ProfileID(c)
	if e.DB == nil || id == "" {
		return settings.NewDocument(format)
	}

	doc, err := profile.Load(e.DB, id, format)
	if err != nil {
		log.Error().Err(err).Str("profile", id).Msg("failed to load barcode settings")
		return settings.NewDocument(format)
	}

	return doc
}
