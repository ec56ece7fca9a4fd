package encoder

import (
	"image"
	"image/color"

	"github.com/boombuler/barcode"
	qrcode "github.com/skip2/go-qrcode"
)

// matrixCode adapts a go-qrcode bitmap to the barcode.Barcode interface so
// both encoder libraries share one rendering path.
type matrixCode struct {
	bits    [][]bool
	content string
}

func encodeQR(value string) (barcode.Barcode, error) {
	q, err := qrcode.New(value, qrcode.Medium)
	if err != nil {
		return nil, err
	}

	// quiet zone comes from the configured margin
	q.DisableBorder = true

	return &matrixCode{bits: q.Bitmap(), content: value}, nil
}

func (m *matrixCode) ColorModel() color.Model {
	return color.Gray16Model
}

func (m *matrixCode) Bounds() image.Rectangle {
	return image.Rect(0, 0, len(m.bits), len(m.bits))
}

func (m *matrixCode) At(x, y int) color.Color {
	if y >= 0 && y < len(m.bits) && x >= 0 && x < len(m.bits[y]) && m.bits[y][x] {
		return color.Black
	}

	return color.White
}

func (m *matrixCode) Metadata() barcode.Metadata {
	return barcode.Metadata{CodeKind: "QR Code", Dimensions: 2} //nolint:mnd
}

func (m *matrixCode) Content() string {
	return m.content
}
