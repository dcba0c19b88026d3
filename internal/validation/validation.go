// SPDX-License-Identifier: MIT

// Package validation wraps a shared go-playground validator and renders its
// errors as short, field-oriented messages.
package validation

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// validate is the singleton validator instance; it caches struct metadata.
var validate = validator.New(validator.WithRequiredStructEnabled())

// Struct validates v against its `validate` tags. The returned error names
// the first offending field.
func Struct(v any) error {
	if err := validate.Struct(v); err != nil {
		return formatValidationError(err)
	}
	return nil
}

func formatValidationError(err error) error {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err
	}

	for _, e := range validationErrs {
		field := e.Namespace()
		param := e.Param()

		switch e.Tag() {
		case "required":
			return fmt.Errorf("%s: field is required", field)
		case "min", "gte":
			return fmt.Errorf("%s: must be at least %s, got %v", field, param, e.Value())
		case "max", "lte":
			return fmt.Errorf("%s: must not exceed %s, got %v", field, param, e.Value())
		case "gt":
			return fmt.Errorf("%s: must be greater than %s, got %v", field, param, e.Value())
		case "ltefield":
			return fmt.Errorf("%s: must not exceed %s, got %v", field, param, e.Value())
		default:
			return fmt.Errorf("%s: validation failed (%s)", field, e.Tag())
		}
	}

	return err
}
