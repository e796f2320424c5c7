package customvalidator

import (
	"regexp"

	"github.com/go-playground/validator/v10"

	"pulse/internal/hierarchy"
)

// RegisterCustomValidations registers all Pulse-specific validation
// rules on the given validator instance.
func RegisterCustomValidations(v *validator.Validate) error {
	if err := v.RegisterValidation("role", isKnownRole); err != nil {
		return err
	}
	if err := v.RegisterValidation("asset_status", isAssetStatus); err != nil {
		return err
	}
	if err := v.RegisterValidation("email", isGoodEmailFormat); err != nil {
		return err
	}
	return nil
}

func isKnownRole(fl validator.FieldLevel) bool {
	_, ok := hierarchy.ParseRole(fl.Field().String())
	return ok
}

func isAssetStatus(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "in_stock", "assigned", "retired":
		return true
	}
	return false
}

func isGoodEmailFormat(fl validator.FieldLevel) bool {
	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	return emailRegex.MatchString(fl.Field().String())
}
