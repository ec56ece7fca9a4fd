// Package settings exposes the per-profile barcode settings document.
package settings

import (
	"github.com/gofiber/fiber/v3"
	"github.com/rs/zerolog/log"

	"github.com/barcode-maker/barcode-maker/internal/db/controller/profile"
	"github.com/barcode-maker/barcode-maker/internal/render"
	bsettings "github.com/barcode-maker/barcode-maker/internal/settings"
	"github.com/barcode-maker/barcode-maker/internal/symbology"
	"github.com/barcode-maker/barcode-maker/internal/web/handler"
)

const (
	// Path is the base path of the settings API.
	Path = handler.APIPath + "/settings"

	// FormatPath updates the settings of one format.
	FormatPath = Path + "/formats/:format"

	// ImageFormatPath updates the preferred download format.
	ImageFormatPath = Path + "/image-format"

	// ImportPath takes a settings document kept by a browser, in any
	// historic shape, and stores its migrated form.
	ImportPath = Path + "/import"

	msgUnknownFormat = "Unknown barcode format"
	msgSaveFailed    = "Saving settings failed"
	msgResetFailed   = "Resetting settings failed"
)

// ImageFormatRequest is the body of an image format update.
type ImageFormatRequest struct {
	ImageFormat string `json:"imageFormat" validate:"required,oneof=svg png jpg jpeg gif"`
}

// Service is the settings handler service.
type Service struct {
	handler.Service
	env *handler.Env
}

// Handler is the settings handler.
var Handler = Service{}

// Init registers the routes. Without a database the settings API is not served.
func (s *Service) Init(app *fiber.App, env *handler.Env) {
	if app == nil || !env.Valid() {
		log.Fatal().Msg(handler.ErrNilACDFatalLogMsg)
		return
	}

	if env.DB == nil {
		log.Warn().Msg("no database configured, settings API disabled")
		return
	}

	s.env = env

	app.Get(Path, s.Get)
	app.Delete(Path, s.Reset)
	app.Put(FormatPath, s.PutFormat)
	app.Put(ImageFormatPath, s.PutImageFormat)
	app.Post(ImportPath, s.Import)
}

func (s *Service) initFormat(c fiber.Ctx) string {
	if f, ok := symbology.Canonical(c.Query("format")); ok {
		return f
	}

	return s.env.Cfg.Barcode.DefaultFormat
}

// Get returns the settings document of the profile.
func (s *Service) Get(c fiber.Ctx) error {
	return c.JSON(s.env.LoadSettings(c, s.initFormat(c)))
}

// Reset drops the stored settings of the profile and returns the defaults.
func (s *Service) Reset(c fiber.Ctx) error {
	if err := profile.Reset(s.env.DB, handler.ProfileID(c)); err != nil {
		log.Error().Err(err).Str("profile", handler.ProfileID(c)).Msg("failed to reset barcode settings")
		return handler.JSONError(c, fiber.StatusInternalServerError, msgResetFailed)
	}

	return c.JSON(bsettings.NewDocument(s.initFormat(c)))
}

// PutFormat replaces the settings of one format.
func (s *Service) PutFormat(c fiber.Ctx) error {
	format, ok := symbology.Canonical(c.Params("format"))
	if !ok {
		return handler.JSONError(c, fiber.StatusBadRequest, msgUnknownFormat)
	}

	in := new(bsettings.FormatSettings)
	if ok, err := handler.BindAndValidate(c, in); !ok {
		return err
	}

	doc := s.env.LoadSettings(c, format)
	doc.Put(format, *in)

	return s.save(c, doc)
}

// PutImageFormat changes the preferred download format.
func (s *Service) PutImageFormat(c fiber.Ctx) error {
	in := new(ImageFormatRequest)
	if ok, err := handler.BindAndValidate(c, in); !ok {
		return err
	}

	f, err := render.ParseImageFormat(in.ImageFormat)
	if err != nil {
		return handler.JSONError(c, fiber.StatusBadRequest, handler.MsgInvalidParameters)
	}

	doc := s.env.LoadSettings(c, s.initFormat(c))
	doc.SetImageFormat(f)

	return s.save(c, doc)
}

// Import migrates and stores a browser side settings document.
func (s *Service) Import(c fiber.Ctx) error {
	doc, err := bsettings.Migrate(c.Body(), s.initFormat(c))
	if err != nil {
		return handler.JSONError(c, fiber.StatusBadRequest, handler.MsgInvalidParameters)
	}

	return s.save(c, doc)
}

func (s *Service) save(c fiber.Ctx, doc bsettings.Document) error {
	if err := profile.Save(s.env.DB, handler.ProfileID(c), doc); err != nil {
		log.Error().Err(err).Str("profile", handler.ProfileID(c)).Msg("failed to save barcode settings")
		return handler.JSONError(c, fiber.StatusInternalServerError, msgSaveFailed)
	}

	return c.JSON(doc)
}
