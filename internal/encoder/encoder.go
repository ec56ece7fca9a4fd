// Package encoder turns a format identifier and a payload into a barcode
// symbol by calling the encoder libraries. No symbology algorithm lives here:
// the package only prepares payloads (character-set checks, GS1 element
// strings, publishing numbers) and picks the library call.
package encoder

import (
	"fmt"
	"strings"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/aztec"
	"github.com/boombuler/barcode/codabar"
	"github.com/boombuler/barcode/code128"
	"github.com/boombuler/barcode/code39"
	"github.com/boombuler/barcode/datamatrix"
	"github.com/boombuler/barcode/ean"
	"github.com/boombuler/barcode/pdf417"
	"github.com/boombuler/barcode/twooffive"
	"github.com/rs/zerolog/log"

	"github.com/barcode-maker/barcode-maker/internal/symbology"
)

const (
	pdf417SecurityLevel = 2
	aztecMinECCPercent  = 23
	aztecAutoLayers     = 0
	itf14Length         = 14
)

// Symbol is an encoded barcode together with its human readable text.
type Symbol struct {
	barcode.Barcode
	Format string
	Text   string
}

// Encode encodes value using the encoder library responsible for format.
func Encode(format, value string) (sym *Symbol, err error) {
	if value == "" {
		return nil, invalid(format, value, fmt.Errorf("empty payload"))
	}

	// encoder libraries are third-party code; a panic must not take down the caller
	defer func() {
		if r := recover(); r != nil {
			log.Error().Str("format", format).Interface("panic", r).Msg("encoder panicked")
			sym, err = nil, fmt.Errorf("%w: %v", ErrEncoderFailure, r)
		}
	}()

	var bc barcode.Barcode

	switch symbology.BackendFor(format) {
	case symbology.BackendLinear:
		bc, err = encodeLinear(strings.ToLower(format), value)
	case symbology.BackendMatrix:
		bc, err = encodeQR(value)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}

	if err != nil {
		return nil, invalid(format, value, err)
	}

	return &Symbol{Barcode: bc, Format: format, Text: value}, nil
}

func encodeLinear(format, value string) (barcode.Barcode, error) {
	switch format {
	case "code128":
		return code128.Encode(value)
	case "code128a", "code128b", "code128c":
		if err := checkCode128Subset(format[len(format)-1:], value); err != nil {
			return nil, err
		}

		return code128.Encode(value)
	case "gs1-128":
		content, err := gs1Content(value)
		if err != nil {
			return nil, err
		}

		return code128.Encode(content)
	case "ean13", "ean8", "upc":
		if err := checkEANLength(format, value); err != nil {
			return nil, err
		}

		if format == "upc" {
			value = "0" + value
		}

		return ean.Encode(value)
	case "isbn", "ismn", "issn":
		digits, err := publishingEAN(format, value)
		if err != nil {
			return nil, err
		}

		return ean.Encode(digits)
	case "code39":
		return code39.Encode(value, false, false)
	case "code39ext":
		return code39.Encode(value, false, true)
	case "itf":
		return twooffive.Encode(value, true)
	case "itf14":
		if err := checkITF14(value); err != nil {
			return nil, err
		}

		return twooffive.Encode(value, true)
	case "codabar":
		return codabar.Encode(strings.ToUpper(value))
	case "datamatrix":
		return datamatrix.Encode(value)
	case "pdf417":
		return pdf417.Encode(value, pdf417SecurityLevel)
	case "azteccode":
		return aztec.Encode([]byte(value), aztecMinECCPercent, aztecAutoLayers)
	}

	return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
}

// ean.Encode picks EAN-8 or EAN-13 from the payload length, so the length has
// to match the requested symbology. The check digit is optional.
var eanLengths = map[string][2]int{
	"ean13": {12, 13}, //nolint:mnd
	"ean8":  {7, 8},   //nolint:mnd
	"upc":   {11, 12}, //nolint:mnd
}

func checkEANLength(format, value string) error {
	l := eanLengths[format]
	if len(value) != l[0] && len(value) != l[1] {
		return fmt.Errorf("%s needs %d or %d digits", format, l[0], l[1])
	}

	return nil
}

func checkITF14(value string) error {
	if len(value) != itf14Length || !isDigits(value) {
		return fmt.Errorf("ITF-14 needs %d digits", itf14Length)
	}

	want, err := twooffive.AddCheckSum(value[:itf14Length-1])
	if err != nil {
		return err
	}

	if want != value {
		return fmt.Errorf("check digit mismatch, expected %s", want[itf14Length-1:])
	}

	return nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}

	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}

	return true
}
