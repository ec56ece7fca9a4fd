package render_test

import (
	"bytes"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/barcode-maker/barcode-maker/internal/encoder"
	"github.com/barcode-maker/barcode-maker/internal/render"
)

func encode(t *testing.T, format, value string) *encoder.Symbol {
	t.Helper()

	sym, err := encoder.Encode(format, value)
	require.NoError(t, err)

	return sym
}

func TestNewLayout_Linear(t *testing.T) {
	sym := encode(t, "Code128", "ABC-abc-1234")
	cols := sym.Bounds().Dx()

	l := render.NewLayout(sym, render.Options{Width: 260, Height: 80, Margin: 10, ShowText: true}, false)

	assert.False(t, l.TwoD)
	assert.Equal(t, max(1, 260/cols), l.ModulePx)
	assert.Equal(t, cols*l.ModulePx, l.SymbolW)
	assert.Equal(t, 80, l.SymbolH)
	assert.Equal(t, max(260, l.SymbolW)+20, l.CanvasW)
	assert.Equal(t, 80+20+render.DefaultFontSize+render.TextMargin, l.CanvasH)
	assert.Equal(t, l.CanvasW/2, l.TextX)
}

func TestNewLayout_NaturalWidth(t *testing.T) {
	sym := encode(t, "Ean13", "5901234123457")

	l := render.NewLayout(sym, render.Options{}, false)

	assert.Equal(t, render.DefaultModulePx, l.ModulePx)
	assert.Equal(t, render.DefaultHeight, l.SymbolH)
	assert.Equal(t, l.SymbolW, l.CanvasW)
	assert.Equal(t, l.SymbolH, l.CanvasH)
}

func TestNewLayout_TooNarrowGrows(t *testing.T) {
	sym := encode(t, "Code39", "CODE 39")

	l := render.NewLayout(sym, render.Options{Width: 10, Height: 50}, false)

	assert.Equal(t, 1, l.ModulePx)
	assert.Equal(t, sym.Bounds().Dx(), l.CanvasW)
}

func TestNewLayout_SquareSymbol(t *testing.T) {
	sym := encode(t, "Qrcode", "https://barcode-maker.com")

	l := render.NewLayout(sym, render.Options{Width: 260, Height: 80, Margin: 10}, true)

	assert.True(t, l.TwoD)
	assert.Equal(t, l.SymbolW, l.SymbolH)
	assert.Equal(t, l.CanvasW, l.CanvasH, "square symbols ignore the requested height")
	assert.GreaterOrEqual(t, l.SymbolX, 10)
}

func TestRender_SVG(t *testing.T) {
	sym := encode(t, "Code128", "A&B<1>")

	out, err := render.Render(sym, sym.Text, render.SVG, render.DefaultOptions(), false)
	require.NoError(t, err)

	s := string(out)
	assert.Contains(t, s, "<svg")
	assert.Contains(t, s, "<rect")
	assert.Contains(t, s, "A&amp;B&lt;1&gt;")
	assert.True(t, strings.HasSuffix(strings.TrimSpace(s), "</svg>"))
}

func TestRender_SVGWithoutText(t *testing.T) {
	sym := encode(t, "Datamatrix", "hello")

	opts := render.DefaultOptions()
	opts.ShowText = false

	out, err := render.Render(sym, sym.Text, render.SVG, opts, true)
	require.NoError(t, err)
	assert.NotContains(t, string(out), "<text")
}

func TestRender_Raster(t *testing.T) {
	sym := encode(t, "Ean8", "96385074")
	opts := render.Options{Width: 200, Height: 60, Margin: 5, ShowText: true}
	l := render.NewLayout(sym, opts, false)

	for _, format := range []render.ImageFormat{render.PNG, render.JPG, render.GIF} {
		t.Run(string(format), func(t *testing.T) {
			out, err := render.Render(sym, sym.Text, format, opts, false)
			require.NoError(t, err)

			cfg, name, err := image.DecodeConfig(bytes.NewReader(out))
			require.NoError(t, err)
			assert.Equal(t, l.CanvasW, cfg.Width)
			assert.Equal(t, l.CanvasH, cfg.Height)

			want := string(format)
			if format == render.JPG {
				want = "jpeg"
			}

			assert.Equal(t, want, name)
		})
	}
}

func TestParseImageFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    render.ImageFormat
		wantErr bool
	}{
		{"svg", render.SVG, false},
		{"PNG", render.PNG, false},
		{"jpeg", render.JPG, false},
		{" gif ", render.GIF, false},
		{"bmp", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := render.ParseImageFormat(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, render.ErrUnknownImageFormat)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	assert.Equal(t, "image/svg+xml", render.SVG.ContentType())
	assert.Equal(t, "image/jpeg", render.JPG.ContentType())
	assert.Equal(t, "gif", render.GIF.Extension())
}
