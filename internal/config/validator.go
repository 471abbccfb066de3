package config

import (
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/powerline/internal/segments"
	powerlineerrors "github.com/alexisbeaulieu97/powerline/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("module", func(fl validator.FieldLevel) bool {
			_, ok := segments.Lookup(fl.Field().String())
			return ok
		})

		validateInst = v
	})

	return validateInst
}

// ValidateSettings performs schema validation on the settings.
func ValidateSettings(settings *Settings) error {
	if settings == nil {
		return powerlineerrors.NewValidationError("settings", "settings are nil", nil)
	}

	if err := validatorInstance().Struct(settings); err != nil {
		return convertValidationError(err)
	}
	return nil
}

// convertValidationError normalizes validator errors into validation errors.
func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		if ve.Tag() == "module" {
			msg = fmt.Sprintf("unknown module %q (expected one of %s)", ve.Value(), strings.Join(segments.Names(), ", "))
		}
		return powerlineerrors.NewValidationError(field, msg, err)
	}

	return powerlineerrors.NewValidationError("settings", err.Error(), err)
}

func yamlishFieldName(fe validator.FieldError) string {
	ns := fe.StructNamespace()
	parts := strings.Split(ns, ".")
	var lowered []string
	for _, part := range parts {
		lowered = append(lowered, strings.ToLower(part))
	}
	return strings.Join(lowered, ".")
}
