package utils

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	apperrors "pulse/pkg/errors"
)

// Validator adapts go-playground/validator to the echo.Validator
// interface.
type Validator struct {
	validator *validator.Validate
}

func NewValidator(v *validator.Validate) *Validator {
	return &Validator{validator: v}
}

func (v *Validator) Validate(i interface{}) error {
	if err := v.validator.Struct(i); err != nil {
		return apperrors.NewHttpError(http.StatusUnprocessableEntity, "validation failed", err)
	}
	return nil
}
