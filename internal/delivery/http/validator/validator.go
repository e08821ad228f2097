// Package validator wires go-playground/validator into echo's Validator hook.
package validator

import (
	playground "github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// RequestValidator adapts go-playground/validator for echo.
type RequestValidator struct {
	validate *playground.Validate
}

// New creates a request validator with struct tag validation enabled.
func New() *RequestValidator {
	return &RequestValidator{
		validate: playground.New(playground.WithRequiredStructEnabled()),
	}
}

// Validate implements echo.Validator.
func (v *RequestValidator) Validate(i any) error {
	return errors.WithStack(v.validate.Struct(i))
}
