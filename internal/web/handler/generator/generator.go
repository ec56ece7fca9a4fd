// Package generator serves the barcode generator page.
package generator

import (
	"github.com/gofiber/fiber/v3"
	"github.com/rs/zerolog/log"

	"github.com/barcode-maker/barcode-maker/internal/render"
	"github.com/barcode-maker/barcode-maker/internal/symbology"
	"github.com/barcode-maker/barcode-maker/internal/web/handler"
	"github.com/barcode-maker/barcode-maker/internal/web/handler/formats"
	"github.com/barcode-maker/barcode-maker/internal/web/navigation"
)

const (
	// Path is the generator page.
	Path = handler.RootPath

	// TemplateName is the name of the generator template.
	TemplateName = "generator/index"
)

// Data is passed to the generator template.
type Data struct {
	Format       string
	Category     string
	InitData     string
	Is2D         bool
	LockHeight   bool
	Supported    bool
	Width        int
	Height       int
	Margin       int
	ShowText     bool
	ImageFormat  render.ImageFormat
	ImageFormats []render.ImageFormat
	Categories   []formats.Category
}

// Service is the generator page handler service.
type Service struct {
	handler.Service
	env *handler.Env
}

// Handler is the generator page handler.
var Handler = Service{}

// Init registers the route.
func (s *Service) Init(app *fiber.App, env *handler.Env) {
	if app == nil || !env.Valid() {
		log.Fatal().Msg(handler.ErrNilACDFatalLogMsg)
		return
	}

	s.env = env

	app.Get(Path, s.Get)
}

// Get renders the generator for ?format=, falling back to the configured default.
func (s *Service) Get(c fiber.Ctx) error {
	format, ok := symbology.Canonical(c.Query("format"))
	if !ok {
		format = s.env.Cfg.Barcode.DefaultFormat
	}

	doc := s.env.LoadSettings(c, format)
	fs := doc.For(format)
	category, _ := symbology.FindCategory(format)

	nav := navigation.NewContext("Barcode Generator", navigation.PageGenerator).
		AddBreadcrumb("Home", Path, false).
		AddBreadcrumb(format, Path+"?format="+format, true)

	return c.Render(TemplateName, fiber.Map{
		"Navigation": nav,
		"Data": Data{
			Format:       format,
			Category:     category,
			InitData:     symbology.InitData(format),
			Is2D:         symbology.Is2D(format),
			LockHeight:   symbology.LockHeight(format),
			Supported:    symbology.Supported(format),
			Width:        fs.Width,
			Height:       fs.Height,
			Margin:       fs.Margin,
			ShowText:     fs.ShowText,
			ImageFormat:  doc.GlobalSettings.ImageFormat,
			ImageFormats: []render.ImageFormat{render.SVG, render.PNG, render.JPG, render.GIF},
			Categories:   formats.Catalog(),
		},
	}, handler.BaseLayout)
}
