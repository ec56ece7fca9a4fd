// Package barcode serves single barcode images addressed by URL, e.g.
// /api/barcode/qrcode/hello. Responses never change for a given URL and are
// cached by clients and the response cache.
package barcode

import (
	"net/url"
	"strconv"

	"github.com/gofiber/fiber/v3"
	"github.com/rs/zerolog/log"

	"github.com/barcode-maker/barcode-maker/internal/render"
	"github.com/barcode-maker/barcode-maker/internal/web/handler"
)

const (
	// Path is the route of the retrieval endpoint, both parameters are
	// optional so that missing ones can be answered with 400.
	Path = handler.APIPath + "/barcode/:code?/:data?"

	// CachePrefix is the route prefix the response cache is mounted on.
	CachePrefix = handler.APIPath + "/barcode"

	// CacheControl is sent with every rendered image.
	CacheControl = "public, max-age=31536000, immutable"
)

// Service is the retrieval handler service.
type Service struct {
	handler.Service
	env *handler.Env
}

// Handler is the retrieval handler.
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

// Get renders the barcode of format :code holding :data.
func (s *Service) Get(c fiber.Ctx) error {
	code, err := url.PathUnescape(c.Params("code"))
	if err != nil || code == "" {
		return handler.JSONError(c, fiber.StatusBadRequest, handler.MsgInvalidParameters)
	}

	data, err := url.PathUnescape(c.Params("data"))
	if err != nil || data == "" {
		return handler.JSONError(c, fiber.StatusBadRequest, handler.MsgInvalidParameters)
	}

	img, opts, ok := parseQuery(c)
	if !ok {
		return handler.JSONError(c, fiber.StatusBadRequest, handler.MsgInvalidParameters)
	}

	out, err := s.env.Generator.Render(code, data, img, opts)
	if err != nil {
		return handler.RenderFailure(c, code, err)
	}

	c.Set(fiber.HeaderContentType, img.ContentType())
	c.Set(fiber.HeaderCacheControl, CacheControl)

	return c.Send(out)
}

// parseQuery reads the optional width, height, margin, text and image query
// parameters on top of the default options.
func parseQuery(c fiber.Ctx) (render.ImageFormat, render.Options, bool) {
	var (
		opts = render.DefaultOptions()
		img  = render.SVG
	)

	ints := []struct {
		key string
		dst *int
	}{
		{"width", &opts.Width},
		{"height", &opts.Height},
		{"margin", &opts.Margin},
	}

	for _, p := range ints {
		v := c.Query(p.key)
		if v == "" {
			continue
		}

		n, err := strconv.Atoi(v)
		if err != nil {
			return "", opts, false
		}

		*p.dst = n
	}

	if v := c.Query("text"); v != "" {
		show, err := strconv.ParseBool(v)
		if err != nil {
			return "", opts, false
		}

		opts.ShowText = show
	}

	if v := c.Query("image"); v != "" {
		f, err := render.ParseImageFormat(v)
		if err != nil {
			return "", opts, false
		}

		img = f
	}

	if errs := handler.Validator.Validate(opts); len(errs) > 0 {
		return "", opts, false
	}

	return img, opts, true
}
