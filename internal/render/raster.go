package render

import (
	"image"
	"image/draw"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"

	"github.com/boombuler/barcode"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const jpegQuality = 90

// Raster draws bc onto a white canvas.
func Raster(bc barcode.Barcode, text string, l Layout) (*image.RGBA, error) {
	img := image.NewRGBA(image.Rect(0, 0, l.CanvasW, l.CanvasH))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	scaled, err := barcode.Scale(bc, l.SymbolW, l.SymbolH)
	if err != nil {
		return nil, err
	}

	target := image.Rect(l.SymbolX, l.SymbolY, l.SymbolX+l.SymbolW, l.SymbolY+l.SymbolH)
	draw.Draw(img, target, scaled, scaled.Bounds().Min, draw.Src)

	if l.ShowText && text != "" {
		d := &font.Drawer{
			Dst:  img,
			Src:  image.Black,
			Face: basicfont.Face7x13,
		}

		width := d.MeasureString(text).Ceil()
		d.Dot = fixed.P(l.TextX-width/2, l.TextY)
		d.DrawString(text)
	}

	return img, nil
}

// WriteRaster encodes the rasterized symbol as png, jpg or gif.
func WriteRaster(w io.Writer, bc barcode.Barcode, text string, format ImageFormat, l Layout) error {
	img, err := Raster(bc, text, l)
	if err != nil {
		return err
	}

	switch format {
	case JPG:
		return jpeg.Encode(w, img, &jpeg.Options{Quality: jpegQuality})
	case GIF:
		return gif.Encode(w, img, &gif.Options{NumColors: 256, Drawer: draw.Src}) //nolint:mnd
	case PNG:
		return png.Encode(w, img)
	}

	return ErrUnknownImageFormat
}
