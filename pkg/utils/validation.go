package utils

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldErrors maps a field name to its first validation failure message,
// the shape forms render error states from.
type FieldErrors map[string]string

// MapValidationErrors flattens a binding error into field->message form.
// Non-validator errors collapse onto a single "request" entry.
func MapValidationErrors(err error) FieldErrors {
	out := FieldErrors{}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		out["request"] = err.Error()
		return out
	}

	for _, e := range validationErrors {
		field := strings.ToLower(e.Field())
		if _, exists := out[field]; exists {
			continue
		}
		out[field] = fieldMessage(field, e)
	}
	return out
}

func fieldMessage(field string, e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, e.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", field, e.Param())
	case "gte":
		return fmt.Sprintf("%s must be %s or more", field, e.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, e.Param())
	case "eqfield":
		return fmt.Sprintf("%s does not match", field)
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
