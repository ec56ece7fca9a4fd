package settings

import (
	"encoding/json"
	"fmt"
	"maps"
	"slices"

	"github.com/barcode-maker/barcode-maker/internal/render"
)

// stored is the on-disk shape, including the flat fields of the first
// settings version.
type stored struct {
	BarcodeLength  *float64                  `json:"barcodeLength"`
	BarcodeHeight  *float64                  `json:"barcodeHeight"`
	ShowText       *bool                     `json:"showText"`
	ImageFormat    *string                   `json:"imageFormat"`
	BarcodeMargin  *float64                  `json:"barcodeMargin"`
	FormatSettings map[string]FormatSettings `json:"formatSettings"`
	GlobalSettings *struct {
		ImageFormat string `json:"imageFormat"`
	} `json:"globalSettings"`
}

// Migrate decodes a stored settings record into a Document.
//
// A record that already carries per-format settings is used as is. Otherwise,
// if the flat settings of the first version are present (even as null), they
// become the settings of initFormat; zero or missing numbers fall back to the
// defaults while an explicit showText=false is kept. Without either,
// initFormat gets its defaults. An empty raw record is not an error.
func Migrate(raw []byte, initFormat string) (Document, error) {
	if len(raw) == 0 {
		return NewDocument(initFormat), nil
	}

	var (
		s    stored
		keys map[string]json.RawMessage
	)

	if err := json.Unmarshal(raw, &keys); err != nil {
		return NewDocument(initFormat), fmt.Errorf("decode settings: %w", err)
	}

	if err := json.Unmarshal(raw, &s); err != nil {
		return NewDocument(initFormat), fmt.Errorf("decode settings: %w", err)
	}

	d := Document{FormatSettings: map[string]FormatSettings{}}

	switch _, hasLegacy := keys["barcodeLength"]; {
	case s.FormatSettings != nil:
		// an entry stored under the canonical name wins over spelling variants,
		// among variants the first in sorted order wins
		for _, format := range slices.Sorted(maps.Keys(s.FormatSettings)) {
			k := key(format)
			if _, taken := d.FormatSettings[k]; taken && format != k {
				continue
			}

			d.FormatSettings[k] = s.FormatSettings[format]
		}
	case hasLegacy:
		legacy := FormatSettings{
			Width:    orDefault(s.BarcodeLength, Defaults.Width),
			Height:   orDefault(s.BarcodeHeight, Defaults.Height),
			ShowText: Defaults.ShowText,
			Margin:   orDefault(s.BarcodeMargin, Defaults.Margin),
		}

		if s.ShowText != nil {
			legacy.ShowText = *s.ShowText
		}

		d.FormatSettings[key(initFormat)] = legacy
	default:
		d.FormatSettings[key(initFormat)] = DefaultsFor(initFormat)
	}

	d.GlobalSettings.ImageFormat = DefaultImageFormat

	var candidates []string
	if s.GlobalSettings != nil {
		candidates = append(candidates, s.GlobalSettings.ImageFormat)
	}

	if s.ImageFormat != nil {
		candidates = append(candidates, *s.ImageFormat)
	}

	for _, c := range candidates {
		if f, err := render.ParseImageFormat(c); err == nil {
			d.GlobalSettings.ImageFormat = f
			break
		}
	}

	return d, nil
}

// orDefault treats nil and zero as unset.
func orDefault(v *float64, def int) int {
	if v == nil || *v == 0 {
		return def
	}

	return int(*v)
}
