package handler

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v3"
	"github.com/rs/zerolog/log"

	"github.com/barcode-maker/barcode-maker/internal/encoder"
	"github.com/barcode-maker/barcode-maker/internal/export"
	"github.com/barcode-maker/barcode-maker/internal/render"
)

// ErrorBody is the JSON body of every failed API call.
type ErrorBody struct {
	Error  string          `json:"error"`
	Fields []ErrorResponse `json:"fields,omitempty"`
}

// JSONError sends msg with the given status.
func JSONError(c fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(ErrorBody{Error: msg})
}

// RenderFailure maps a render or export error onto the HTTP response.
// Rejected payloads and unsupported formats are client errors, everything
// else is logged and answered with a generic message.
func RenderFailure(c fiber.Ctx, format string, err error) error {
	var valueErr *encoder.ValueError

	switch {
	case errors.As(err, &valueErr):
		return JSONError(c, fiber.StatusBadRequest, valueErr.Error())
	case errors.Is(err, encoder.ErrUnsupportedFormat):
		return JSONError(c, fiber.StatusBadRequest, fmt.Sprintf("Unsupported barcode format: %s", format))
	case errors.Is(err, export.ErrNoValues),
		errors.Is(err, export.ErrTooManyValues),
		errors.Is(err, render.ErrUnknownImageFormat):
		return JSONError(c, fiber.StatusBadRequest, err.Error())
	}

	log.Error().Err(err).Str("format", format).Str("path", c.Path()).Msg("barcode generation failed")

	return JSONError(c, fiber.StatusInternalServerError, MsgGenerationFailed)
}
