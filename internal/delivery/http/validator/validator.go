// Package validator adapts go-playground/validator to echo's Validator interface.
package validator

import (
	domainerrors "storefront/internal/domain/errors"

	"github.com/go-playground/validator/v10"
)

// CustomValidator wraps the validator instance for echo.
type CustomValidator struct {
	validate *validator.Validate
}

// New creates a validator with struct tag validation enabled.
func New() *CustomValidator {
	return &CustomValidator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Validate implements echo.Validator.
func (cv *CustomValidator) Validate(i any) error {
	if err := cv.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
