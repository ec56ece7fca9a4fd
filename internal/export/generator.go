package export

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/klauspost/compress/zip"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/barcode-maker/barcode-maker/internal/encoder"
	"github.com/barcode-maker/barcode-maker/internal/metrics"
	"github.com/barcode-maker/barcode-maker/internal/render"
	"github.com/barcode-maker/barcode-maker/internal/symbology"
)

const (
	// ArchiveName is the file name of multi value downloads.
	ArchiveName = "barcodes(barcode-maker).zip"

	// KindSingle and KindArchive label the two download kinds.
	KindSingle  = "single"
	KindArchive = "zip"

	defaultWorkers = 4
)

// Image is one rendered value.
type Image struct {
	Value string `json:"value"`
	Data  []byte `json:"-"`
}

// File is a finished download.
type File struct {
	Name        string
	ContentType string
	Data        []byte
	Count       int
}

// Generator renders barcodes with a bounded number of concurrent workers.
type Generator struct {
	workers  int
	maxLines int
}

// New creates a generator. maxLines <= 0 disables the line limit.
func New(workers, maxLines int) *Generator {
	if workers <= 0 {
		workers = defaultWorkers
	}

	return &Generator{workers: workers, maxLines: maxLines}
}

// Render encodes value and draws it in the given image format.
func (g *Generator) Render(format, value string, img render.ImageFormat, opts render.Options) ([]byte, error) {
	start := time.Now()

	data, err := renderValue(format, value, img, opts)
	metrics.ObserveRender(format, string(img), time.Since(start), err)

	return data, err
}

func renderValue(format, value string, img render.ImageFormat, opts render.Options) ([]byte, error) {
	sym, err := encoder.Encode(format, value)
	if err != nil {
		return nil, err
	}

	data, err := render.Render(sym, sym.Text, img, opts, symbology.LockHeight(format))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", encoder.ErrEncoderFailure, err)
	}

	return data, nil
}

// Preview renders every value of input as SVG. The first value, in input
// order, that can not be rendered fails the whole preview.
func (g *Generator) Preview(ctx context.Context, format, input string, opts render.Options) ([]Image, error) {
	return g.renderAll(ctx, format, input, render.SVG, opts)
}

// Export renders input in the given image format. A single value becomes
// barcode-<format>.<ext>, several values are packed into a zip archive.
func (g *Generator) Export(
	ctx context.Context, format, input string, img render.ImageFormat, opts render.Options,
) (*File, error) {
	images, err := g.renderAll(ctx, format, input, img, opts)
	if err != nil {
		return nil, err
	}

	if len(images) == 1 {
		metrics.ObserveExport(KindSingle)

		return &File{
			Name:        FileName(format, img, -1),
			ContentType: img.ContentType(),
			Data:        images[0].Data,
			Count:       1,
		}, nil
	}

	data, err := Archive(format, img, images)
	if err != nil {
		return nil, err
	}

	metrics.ObserveExport(KindArchive)

	log.Debug().
		Str("format", format).
		Int("count", len(images)).
		Str("size", humanize.Bytes(uint64(len(data)))).
		Msg("export archive created")

	return &File{
		Name:        ArchiveName,
		ContentType: "application/zip",
		Data:        data,
		Count:       len(images),
	}, nil
}

// FileName returns the download name of the i-th value (0-based). i < 0
// means the value is the only one of the export.
func FileName(format string, img render.ImageFormat, i int) string {
	if i < 0 {
		return fmt.Sprintf("barcode-%s.%s", format, img.Extension())
	}

	return fmt.Sprintf("barcode-%s_%d.%s", format, i+1, img.Extension())
}

// Archive packs images into a zip archive in slice order.
func Archive(format string, img render.ImageFormat, images []Image) ([]byte, error) {
	var buf bytes.Buffer

	zw := zip.NewWriter(&buf)

	for i, im := range images {
		w, err := zw.CreateHeader(&zip.FileHeader{
			Name:     FileName(format, img, i),
			Method:   zip.Deflate,
			Modified: time.Now(),
		})
		if err != nil {
			return nil, fmt.Errorf("add %d to archive: %w", i+1, err)
		}

		if _, err = w.Write(im.Data); err != nil {
			return nil, fmt.Errorf("write %d to archive: %w", i+1, err)
		}
	}

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("close archive: %w", err)
	}

	return buf.Bytes(), nil
}

func (g *Generator) renderAll(
	ctx context.Context, format, input string, img render.ImageFormat, opts render.Options,
) ([]Image, error) {
	values := Lines(input)

	switch {
	case len(values) == 0:
		return nil, ErrNoValues
	case g.maxLines > 0 && len(values) > g.maxLines:
		return nil, fmt.Errorf("%w: %d > %d", ErrTooManyValues, len(values), g.maxLines)
	}

	var (
		images = make([]Image, len(values))
		errs   = make([]error, len(values))
		eg     errgroup.Group
	)

	eg.SetLimit(g.workers)

	for i, value := range values {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				errs[i] = err
				return nil
			}

			data, err := g.Render(format, value, img, opts)
			images[i] = Image{Value: value, Data: data}
			errs[i] = err

			return nil
		})
	}

	_ = eg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return images, nil
}
