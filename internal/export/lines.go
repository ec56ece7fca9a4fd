package export

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Lines splits input on newlines and drops lines that are blank. Kept lines
// are returned as typed, only normalized to NFC.
func Lines(input string) []string {
	var values []string

	for _, line := range strings.Split(input, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		values = append(values, norm.NFC.String(line))
	}

	return values
}
