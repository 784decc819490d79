// Package validator plugs the domain validation rules into echo's c.Validate.
package validator

import (
	"bootcamper/internal/domain/validation"

	"github.com/labstack/echo/v4"
)

type echoValidator struct{}

// New returns the echo.Validator used by the HTTP server.
func New() echo.Validator {
	return &echoValidator{}
}

// Validate reports rule violations as a 400 validation error.
func (v *echoValidator) Validate(i any) error {
	return validation.Struct(i)
}
