package encoder

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/boombuler/barcode/code128"
)

var (
	errGS1Syntax = errors.New("GS1 data must be written as (AI)data groups")

	gs1Element = regexp.MustCompile(`\((\d{2,4})\)([^()]+)`) //nolint:gochecknoglobals

	// gs1FixedLength maps AI prefixes to the length of their data field.
	// AIs not listed here are variable length and need a FNC1 separator.
	gs1FixedLength = map[string]int{ //nolint:gochecknoglobals
		"00": 18, "01": 14, "02": 14, "03": 14, "04": 16,
		"11": 6, "12": 6, "13": 6, "14": 6, "15": 6, "16": 6, "17": 6, "18": 6, "19": 6,
		"20": 2,
		"31": 6, "32": 6, "33": 6, "34": 6, "35": 6, "36": 6,
		"41": 13,
	}
)

// gs1Field is one application identifier with its data.
type gs1Field struct {
	AI   string
	Data string
}

func parseGS1(value string) ([]gs1Field, error) {
	matches := gs1Element.FindAllStringSubmatchIndex(value, -1)
	if len(matches) == 0 {
		return nil, errGS1Syntax
	}

	var (
		fields = make([]gs1Field, 0, len(matches))
		next   int
	)

	for _, m := range matches {
		if m[0] != next {
			return nil, errGS1Syntax
		}

		next = m[1]
		f := gs1Field{AI: value[m[2]:m[3]], Data: value[m[4]:m[5]]}

		if n, ok := gs1FixedLength[f.AI[:2]]; ok {
			if len(f.Data) != n {
				return nil, fmt.Errorf("AI (%s) expects %d characters, got %d", f.AI, n, len(f.Data))
			}

			if !isDigits(f.Data) && f.AI[:2] != "41" {
				return nil, fmt.Errorf("AI (%s) expects digits", f.AI)
			}
		}

		fields = append(fields, f)
	}

	if next != len(value) {
		return nil, errGS1Syntax
	}

	return fields, nil
}

// gs1Content builds the Code 128 payload: a leading FNC1 and a FNC1 after
// every variable length field that is followed by another field.
func gs1Content(value string) (string, error) {
	fields, err := parseGS1(value)
	if err != nil {
		return "", err
	}

	var sb strings.Builder

	sb.WriteRune(code128.FNC1)

	for i, f := range fields {
		sb.WriteString(f.AI)
		sb.WriteString(f.Data)

		if _, fixed := gs1FixedLength[f.AI[:2]]; !fixed && i < len(fields)-1 {
			sb.WriteRune(code128.FNC1)
		}
	}

	return sb.String(), nil
}

// checkCode128Subset verifies that value only uses characters of code set A, B or C.
func checkCode128Subset(set, value string) error {
	switch set {
	case "a":
		for _, r := range value {
			if r > 0x5f {
				return fmt.Errorf("character %q is not part of code set A", r)
			}
		}
	case "b":
		for _, r := range value {
			if r < 0x20 || r > 0x7f {
				return fmt.Errorf("character %q is not part of code set B", r)
			}
		}
	case "c":
		if !isDigits(value) || len(value)%2 != 0 {
			return errors.New("code set C needs an even number of digits")
		}
	}

	return nil
}
