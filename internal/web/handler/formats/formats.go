// Package formats lists the barcode catalog, as JSON and as a page.
package formats

import (
	"github.com/gofiber/fiber/v3"
	"github.com/rs/zerolog/log"

	"github.com/barcode-maker/barcode-maker/internal/symbology"
	"github.com/barcode-maker/barcode-maker/internal/web/handler"
	"github.com/barcode-maker/barcode-maker/internal/web/navigation"
)

const (
	// APIPath returns the catalog as JSON.
	APIPath = handler.APIPath + "/formats"

	// Path is the format overview page.
	Path = handler.RootPath + "formats"

	// TemplateName is the name of the overview template.
	TemplateName = "formats/index"
)

// Type is a catalog entry with its rendering traits.
type Type struct {
	symbology.Type

	Is2D       bool `json:"is2D"`
	LockHeight bool `json:"lockHeight"`
	Supported  bool `json:"supported"`
}

// Category groups catalog entries.
type Category struct {
	Name  string `json:"name"`
	Types []Type `json:"types"`
}

// Catalog returns every category with the traits of its formats.
func Catalog() []Category {
	out := make([]Category, 0, len(symbology.Categories))

	for _, cat := range symbology.Categories {
		c := Category{Name: cat.Name, Types: make([]Type, 0, len(cat.Types))}

		for _, t := range cat.Types {
			c.Types = append(c.Types, Type{
				Type:       t,
				Is2D:       symbology.Is2D(t.Value),
				LockHeight: symbology.LockHeight(t.Value),
				Supported:  symbology.Supported(t.Value),
			})
		}

		out = append(out, c)
	}

	return out
}

// Service is the formats handler service.
type Service struct {
	handler.Service
}

// Handler is the formats handler.
var Handler = Service{}

// Init registers the routes.
func (s *Service) Init(app *fiber.App, env *handler.Env) {
	if app == nil || !env.Valid() {
		log.Fatal().Msg(handler.ErrNilACDFatalLogMsg)
		return
	}

	app.Get(APIPath, s.List)
	app.Get(Path, s.Page)
}

// List returns the catalog as JSON.
func (s *Service) List(c fiber.Ctx) error {
	return c.JSON(Catalog())
}

// Page renders the format overview.
func (s *Service) Page(c fiber.Ctx) error {
	nav := navigation.NewContext("Formats", navigation.PageFormats).
		AddBreadcrumb("Home", handler.RootPath, false).
		AddBreadcrumb("Formats", Path, true)

	return c.Render(TemplateName, fiber.Map{
		"Navigation": nav,
		"Categories": Catalog(),
	}, handler.BaseLayout)
}
