// Package settings models the per-format barcode settings record a user keeps
// between visits, together with the shim that upgrades the older flat record.
package settings

import (
	"github.com/barcode-maker/barcode-maker/internal/render"
	"github.com/barcode-maker/barcode-maker/internal/symbology"
)

// FormatSettings are the visual parameters remembered for one barcode format.
// The JSON names are the ones browsers stored.
type FormatSettings struct {
	Width    int  `json:"barcodeLength" validate:"gte=1,lte=4000"`
	Height   int  `json:"barcodeHeight" validate:"gte=1,lte=4000"`
	ShowText bool `json:"showText"`
	Margin   int  `json:"barcodeMargin" validate:"gte=0,lte=500"`
}

// GlobalSettings apply to every format.
type GlobalSettings struct {
	ImageFormat render.ImageFormat `json:"imageFormat"`
}

// Document is the complete settings record of one profile.
type Document struct {
	FormatSettings map[string]FormatSettings `json:"formatSettings"`
	GlobalSettings GlobalSettings            `json:"globalSettings"`
}

// Defaults used for formats without stored settings.
var Defaults = FormatSettings{ //nolint:gochecknoglobals
	Width:    260,
	Height:   80,
	ShowText: true,
	Margin:   10,
}

// DefaultImageFormat is used when no export format was chosen yet.
const DefaultImageFormat = render.SVG

// DefaultsFor returns the default settings of a format. Two-dimensional
// formats start with a height equal to their width.
func DefaultsFor(format string) FormatSettings {
	s := Defaults
	if symbology.Is2D(format) {
		s.Height = Defaults.Width
	}

	return s
}

// NewDocument returns an empty document holding the defaults of format.
func NewDocument(format string) Document {
	d := Document{
		FormatSettings: map[string]FormatSettings{},
		GlobalSettings: GlobalSettings{ImageFormat: DefaultImageFormat},
	}
	d.FormatSettings[key(format)] = DefaultsFor(format)

	return d
}

// key spells known formats the way the catalog does, others stay as given.
func key(format string) string {
	if canonical, ok := symbology.Canonical(format); ok {
		return canonical
	}

	return format
}

// For returns the settings of format, falling back to its defaults.
func (d *Document) For(format string) FormatSettings {
	if s, ok := d.FormatSettings[key(format)]; ok {
		return s
	}

	return DefaultsFor(format)
}

// Put stores the settings of format.
func (d *Document) Put(format string, s FormatSettings) {
	if d.FormatSettings == nil {
		d.FormatSettings = map[string]FormatSettings{}
	}

	d.FormatSettings[key(format)] = s
}

// SetImageFormat changes the preferred export format.
func (d *Document) SetImageFormat(f render.ImageFormat) {
	d.GlobalSettings.ImageFormat = f
}

// RenderOptions converts stored settings into render options.
func (s FormatSettings) RenderOptions() render.Options {
	return render.Options{
		Width:    s.Width,
		Height:   s.Height,
		Margin:   s.Margin,
		ShowText: s.ShowText,
		FontSize: render.DefaultFontSize,
	}
}
