package encoder

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedFormat is returned when no encoder library implements the format.
	ErrUnsupportedFormat = errors.New("unsupported barcode format")

	// ErrInvalidValue is returned when the encoder rejects the payload for the format.
	ErrInvalidValue = errors.New("invalid barcode value")

	// ErrEncoderFailure is returned when an encoder library fails unexpectedly.
	ErrEncoderFailure = errors.New("barcode generation failed")
)

// ValueError describes a payload rejected by an encoder.
type ValueError struct {
	Format string
	Value  string
	Cause  error
}

// Error implements error.
func (e *ValueError) Error() string {
	return fmt.Sprintf("Invalid barcode value for %s: %s", e.Format, e.Value)
}

// Unwrap makes errors.Is(err, ErrInvalidValue) hold.
func (e *ValueError) Unwrap() []error {
	return []error{ErrInvalidValue, e.Cause}
}

func invalid(format, value string, cause error) error {
	return &ValueError{Format: format, Value: value, Cause: cause}
}
