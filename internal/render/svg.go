package render

import (
	"fmt"
	"image/color"
	"io"

	svg "github.com/ajstarks/svgo"
	"github.com/boombuler/barcode"
)

const (
	background = "fill:#ffffff"
	foreground = "fill:#000000"
)

func dark(c color.Color) bool {
	r, g, b, _ := c.RGBA()
	return (r+g+b)/3 < 0x8000 //nolint:mnd
}

// WriteSVG draws bc as vector markup. Runs of dark modules on a row become a
// single rect.
func WriteSVG(w io.Writer, bc barcode.Barcode, text string, l Layout) {
	canvas := svg.New(w)
	canvas.Start(l.CanvasW, l.CanvasH)
	canvas.Rect(0, 0, l.CanvasW, l.CanvasH, background)

	rows := 1
	rowPx := l.SymbolH

	if l.TwoD {
		rows = l.Rows
		rowPx = l.ModulePx
	}

	origin := bc.Bounds().Min

	canvas.Gstyle(foreground)

	for row := 0; row < rows; row++ {
		y := l.SymbolY + row*rowPx

		for col := 0; col < l.Cols; {
			if !dark(bc.At(origin.X+col, origin.Y+row)) {
				col++
				continue
			}

			start := col
			for col < l.Cols && dark(bc.At(origin.X+col, origin.Y+row)) {
				col++
			}

			canvas.Rect(l.SymbolX+start*l.ModulePx, y, (col-start)*l.ModulePx, rowPx)
		}
	}

	canvas.Gend()

	if l.ShowText && text != "" {
		canvas.Text(l.TextX, l.TextY, text,
			fmt.Sprintf("text-anchor:middle;font-family:Arial;font-size:%dpx;%s", l.FontSize, foreground))
	}

	canvas.End()
}
