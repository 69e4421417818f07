// Package validator adapts go-playground/validator to echo's Validator
// interface.
package validator

import (
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// Validator wraps a validator.Validate instance for echo.
type Validator struct {
	validate *validator.Validate
}

// New creates a Validator with struct tag validation enabled.
func New() *Validator {
	return &Validator{validate: validator.New()}
}

// Validate implements echo.Validator.
func (v *Validator) Validate(i interface{}) error {
	return errors.WithStack(v.validate.Struct(i))
}
