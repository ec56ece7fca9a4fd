// Package barcodes renders the values typed on the generator page: SVG
// previews and downloads of one image or a zip archive.
package barcodes

import (
	"strconv"

	"github.com/gofiber/fiber/v3"
	"github.com/rs/zerolog/log"

	"github.com/barcode-maker/barcode-maker/internal/render"
	"github.com/barcode-maker/barcode-maker/internal/web/handler"
)

const (
	// PreviewPath renders SVG previews.
	PreviewPath = handler.APIPath + "/barcodes/preview"

	// ExportPath renders a download.
	ExportPath = handler.APIPath + "/barcodes/export"

	// HeaderCount carries the number of images in a download.
	HeaderCount = "X-Barcode-Count"
)

// PreviewRequest is the body of a preview call. Without Options the stored
// settings of the profile for Format are used.
type PreviewRequest struct {
	Format  string          `json:"format"  validate:"required,max=32"`
	Input   string          `json:"input"   validate:"required"`
	Options *render.Options `json:"options"`
}

// ExportRequest is the body of an export call. An empty ImageFormat falls
// back to the stored preference of the profile.
type ExportRequest struct {
	PreviewRequest

	ImageFormat string `json:"imageFormat" validate:"omitempty,oneof=svg png jpg jpeg gif"`
}

// PreviewImage is one rendered value of a preview.
type PreviewImage struct {
	Value string `json:"value"`
	SVG   string `json:"svg"`
}

// PreviewResponse is returned by the preview call.
type PreviewResponse struct {
	Format string         `json:"format"`
	Images []PreviewImage `json:"images"`
}

// Service is the preview and export handler service.
type Service struct {
	handler.Service
	env *handler.Env
}

// Handler is the preview and export handler.
var Handler = Service{}

// Init registers the routes.
func (s *Service) Init(app *fiber.App, env *handler.Env) {
	if app == nil || !env.Valid() {
		log.Fatal().Msg(handler.ErrNilACDFatalLogMsg)
		return
	}

	s.env = env

	app.Post(PreviewPath, s.Preview)
	app.Post(ExportPath, s.Export)
}

// Preview renders every non blank input line as SVG.
func (s *Service) Preview(c fiber.Ctx) error {
	in := new(PreviewRequest)
	if ok, err := handler.BindAndValidate(c, in); !ok {
		return err
	}

	opts := s.options(c, in)

	images, err := s.env.Generator.Preview(c.Context(), in.Format, in.Input, opts)
	if err != nil {
		return handler.RenderFailure(c, in.Format, err)
	}

	out := PreviewResponse{Format: in.Format, Images: make([]PreviewImage, 0, len(images))}
	for _, im := range images {
		out.Images = append(out.Images, PreviewImage{Value: im.Value, SVG: string(im.Data)})
	}

	return c.JSON(out)
}

// Export renders the input as a single image or a zip archive.
func (s *Service) Export(c fiber.Ctx) error {
	in := new(ExportRequest)
	if ok, err := handler.BindAndValidate(c, in); !ok {
		return err
	}

	opts := s.options(c, &in.PreviewRequest)

	img := s.env.LoadSettings(c, in.Format).GlobalSettings.ImageFormat
	if in.ImageFormat != "" {
		f, err := render.ParseImageFormat(in.ImageFormat)
		if err != nil {
			return handler.JSONError(c, fiber.StatusBadRequest, handler.MsgInvalidParameters)
		}

		img = f
	}

	if !img.Valid() {
		img = render.SVG
	}

	file, err := s.env.Generator.Export(c.Context(), in.Format, in.Input, img, opts)
	if err != nil {
		return handler.RenderFailure(c, in.Format, err)
	}

	c.Attachment(file.Name)
	c.Set(fiber.HeaderContentType, file.ContentType)
	c.Set(HeaderCount, strconv.Itoa(file.Count))

	return c.Send(file.Data)
}

func (s *Service) options(c fiber.Ctx, in *PreviewRequest) render.Options {
	if in.Options != nil {
		opts := *in.Options
		if opts.FontSize == 0 {
			opts.FontSize = render.DefaultFontSize
		}

		return opts
	}

	doc := s.env.LoadSettings(c, in.Format)
	fs := doc.For(in.Format)

	return fs.RenderOptions()
}
