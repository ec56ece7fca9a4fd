package export

import "errors"

var (
	// ErrNoValues is returned when the input holds only blank lines.
	ErrNoValues = errors.New("no barcode values given")

	// ErrTooManyValues is returned when the input exceeds the configured line limit.
	ErrTooManyValues = errors.New("too many barcode values")
)
