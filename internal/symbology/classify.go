package symbology

import (
	"slices"
	"strings"
)

// Backend names the encoder library responsible for a format.
type Backend int

const (
	// BackendNone means no available encoder library implements the format.
	BackendNone Backend = iota
	// BackendLinear is github.com/boombuler/barcode.
	BackendLinear
	// BackendMatrix is github.com/skip2/go-qrcode.
	BackendMatrix
)

// String implements fmt.Stringer.
func (b Backend) String() string {
	switch b {
	case BackendLinear:
		return "boombuler"
	case BackendMatrix:
		return "go-qrcode"
	default:
		return "none"
	}
}

var (
	// stacked DataBar is listed here so its default height follows its width
	twoDimensional = []string{"qrcode", "datamatrix", "azteccode", "pdf417", "databarstacked"} //nolint:gochecknoglobals
	squareFormats  = []string{"qrcode", "datamatrix", "azteccode"}                             //nolint:gochecknoglobals

	backends = map[string]Backend{ //nolint:gochecknoglobals
		"code128":    BackendLinear,
		"code128a":   BackendLinear,
		"code128b":   BackendLinear,
		"code128c":   BackendLinear,
		"gs1-128":    BackendLinear,
		"ean13":      BackendLinear,
		"ean8":       BackendLinear,
		"upc":        BackendLinear,
		"datamatrix": BackendLinear,
		"pdf417":     BackendLinear,
		"azteccode":  BackendLinear,
		"code39":     BackendLinear,
		"code39ext":  BackendLinear,
		"itf":        BackendLinear,
		"itf14":      BackendLinear,
		"codabar":    BackendLinear,
		"isbn":       BackendLinear,
		"ismn":       BackendLinear,
		"issn":       BackendLinear,
		"qrcode":     BackendMatrix,
	}
)

// Is2D reports whether the format is a two-dimensional (or stacked) symbology.
// The comparison is case-insensitive.
func Is2D(format string) bool {
	return slices.Contains(twoDimensional, strings.ToLower(format))
}

// LockHeight reports whether the symbol is square, so its height follows its width.
func LockHeight(format string) bool {
	return slices.Contains(squareFormats, strings.ToLower(format))
}

// FindCategory returns the name of the category containing the format.
func FindCategory(value string) (string, bool) {
	for _, c := range Categories {
		for _, t := range c.Types {
			if strings.EqualFold(t.Value, value) {
				return c.Name, true
			}
		}
	}

	return "", false
}

// Lookup returns the catalog entry for a format. When a value is listed more
// than once the last entry wins.
func Lookup(value string) (Type, bool) {
	var (
		found Type
		ok    bool
	)

	for _, t := range All() {
		if strings.EqualFold(t.Value, value) {
			found, ok = t, true
		}
	}

	return found, ok
}

// InitData returns the sample payload of a format, or "" for unknown formats.
func InitData(value string) string {
	t, _ := Lookup(value)
	return t.InitData
}

// BackendFor returns the encoder library responsible for a format.
func BackendFor(value string) Backend {
	return backends[strings.ToLower(value)]
}

// Supported reports whether any encoder library can render the format.
func Supported(value string) bool {
	return BackendFor(value) != BackendNone
}

// Canonical returns the catalog spelling of a format value, e.g. "qrcode" -> "Qrcode".
func Canonical(value string) (string, bool) {
	t, ok := Lookup(value)
	if !ok {
		return value, false
	}

	return t.Value, true
}
