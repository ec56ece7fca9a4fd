package render

import (
	"errors"
	"fmt"
	"strings"
)

// ImageFormat is an output image type.
type ImageFormat string

const (
	// SVG vector markup.
	SVG ImageFormat = "svg"
	// PNG raster image.
	PNG ImageFormat = "png"
	// JPG raster image.
	JPG ImageFormat = "jpg"
	// GIF raster image.
	GIF ImageFormat = "gif"
)

// ErrUnknownImageFormat is returned for image formats that can not be produced.
var ErrUnknownImageFormat = errors.New("unknown image format")

// ParseImageFormat parses an image format name, "jpeg" is accepted as jpg.
func ParseImageFormat(s string) (ImageFormat, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "svg":
		return SVG, nil
	case "png":
		return PNG, nil
	case "jpg", "jpeg":
		return JPG, nil
	case "gif":
		return GIF, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownImageFormat, s)
}

// Valid reports whether f is one of the supported image formats.
func (f ImageFormat) Valid() bool {
	_, err := ParseImageFormat(string(f))
	return err == nil
}

// ContentType returns the MIME type of the image format.
func (f ImageFormat) ContentType() string {
	switch f {
	case SVG:
		return "image/svg+xml"
	case JPG:
		return "image/jpeg"
	case GIF:
		return "image/gif"
	default:
		return "image/png"
	}
}

// Extension returns the file extension without the dot.
func (f ImageFormat) Extension() string {
	return string(f)
}
