// Package validator adapts struct validation to Echo's Validator interface.
package validator

import (
	domainerrors "fogon/internal/domain/errors"

	"github.com/go-playground/validator/v10"
)

// Validator wraps the go-playground validator for Echo.
type Validator struct {
	validate *validator.Validate
}

// New creates the request validator.
func New() *Validator {
	return &Validator{validate: validator.New()}
}

// Validate implements echo.Validator. Violations surface as the standard
// validation error with the precise failure in the details.
func (v *Validator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
