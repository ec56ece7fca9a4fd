// Package render draws encoded barcode symbols as SVG markup or raster images.
package render

import (
	"bytes"

	"github.com/boombuler/barcode"
)

// Render lays out bc with opts and encodes it in the requested image format.
func Render(bc barcode.Barcode, text string, format ImageFormat, opts Options, lockHeight bool) ([]byte, error) {
	var (
		buf bytes.Buffer
		l   = NewLayout(bc, opts, lockHeight)
	)

	if format == SVG {
		WriteSVG(&buf, bc, text, l)
		return buf.Bytes(), nil
	}

	if err := WriteRaster(&buf, bc, text, format, l); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
