package handler

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
)

type (
	// ErrorResponse represents one failed field of a request body.
	ErrorResponse struct {
		FailedField string      `json:"field"`
		Tag         string      `json:"tag"`
		Value       interface{} `json:"value"`
	}

	// XValidator validates request bodies.
	XValidator struct {
		validator *validator.Validate
	}
)

// Validator is shared by all handlers, validator.Validate caches struct info.
var Validator = XValidator{validator: validator.New()} //nolint:gochecknoglobals

// Validate performs validation on the provided data and returns a slice of ErrorResponse.
func (v XValidator) Validate(data interface{}) []ErrorResponse {
	var (
		validationErrors []ErrorResponse
		errs             validator.ValidationErrors
	)

	if err := v.validator.Struct(data); err != nil {
		if !errors.As(err, &errs) {
			return []ErrorResponse{{Tag: err.Error()}}
		}

		for _, fe := range errs {
			validationErrors = append(validationErrors, ErrorResponse{
				FailedField: fe.Namespace(),
				Tag:         fe.Tag(),
				Value:       fe.Value(),
			})
		}
	}

	return validationErrors
}

// BindAndValidate decodes the JSON body of c into in and validates it. On
// failure the 400 response is already written and ok is false.
func BindAndValidate(c fiber.Ctx, in interface{}) (ok bool, err error) {
	if err = c.Bind().Body(in); err != nil {
		return false, JSONError(c, fiber.StatusBadRequest, MsgInvalidParameters)
	}

	if errs := Validator.Validate(in); len(errs) > 0 {
		return false, c.Status(fiber.StatusBadRequest).JSON(ErrorBody{Error: MsgInvalidParameters, Fields: errs})
	}

	return true, nil
}
