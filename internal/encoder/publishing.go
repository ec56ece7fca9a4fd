package encoder

import (
	"errors"
	"strings"
)

var errPublishingNumber = errors.New("not a valid publishing number")

// publishingEAN converts ISBN, ISMN and ISSN notation into the 12 or 13 digit
// EAN-13 payload. A trailing add-on separated by a space is dropped.
func publishingEAN(format, value string) (string, error) {
	parts := strings.Fields(value)
	if len(parts) == 0 {
		return "", errPublishingNumber
	}

	switch format {
	case "isbn":
		return isbnEAN(parts[0])
	case "ismn":
		return ismnEAN(parts[0])
	case "issn":
		variant := "00"
		if len(parts) > 1 {
			variant = parts[1]
		}

		return issnEAN(parts[0], variant)
	}

	return "", errPublishingNumber
}

func stripHyphens(s string) string {
	return strings.ReplaceAll(strings.ReplaceAll(s, "-", ""), " ", "")
}

func isbnEAN(s string) (string, error) {
	s = strings.ToUpper(stripHyphens(s))

	switch len(s) {
	case 13: //nolint:mnd
		if !isDigits(s) || (!strings.HasPrefix(s, "978") && !strings.HasPrefix(s, "979")) {
			return "", errPublishingNumber
		}

		return s, nil
	case 10: //nolint:mnd
		// ISBN-10: the old check digit (possibly X) is replaced by the EAN check digit
		if !isDigits(s[:9]) || !validISBN10(s) {
			return "", errPublishingNumber
		}

		return "978" + s[:9], nil
	}

	return "", errPublishingNumber
}

// validISBN10 checks the mod 11 check digit, X standing for 10.
func validISBN10(s string) bool {
	sum := 0

	for i := range 9 {
		sum += int(s[i]-'0') * (10 - i) //nolint:mnd
	}

	switch c := s[9]; {
	case c == 'X':
		sum += 10 //nolint:mnd
	case c >= '0' && c <= '9':
		sum += int(c - '0')
	default:
		return false
	}

	return sum%11 == 0 //nolint:mnd
}

func ismnEAN(s string) (string, error) {
	s = strings.ToUpper(stripHyphens(s))

	if strings.HasPrefix(s, "M") && len(s) == 10 { //nolint:mnd
		s = "9790" + s[1:9]
		if !isDigits(s) {
			return "", errPublishingNumber
		}

		return s, nil
	}

	if len(s) != 13 || !strings.HasPrefix(s, "9790") || !isDigits(s) { //nolint:mnd
		return "", errPublishingNumber
	}

	return s, nil
}

func issnEAN(s, variant string) (string, error) {
	s = strings.ToUpper(stripHyphens(s))

	if len(s) != 8 || !isDigits(s[:7]) { //nolint:mnd
		return "", errPublishingNumber
	}

	if len(variant) != 2 || !isDigits(variant) { //nolint:mnd
		return "", errPublishingNumber
	}

	return "977" + s[:7] + variant, nil
}
