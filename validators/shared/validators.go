package shared

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Validate checks a tagged payload struct and returns per-field messages,
// keyed by the lower-cased field name. An empty map means the payload is valid.
func Validate(payload interface{}) map[string]string {
	errs := make(map[string]string)
	err := validate.Struct(payload)
	if err == nil {
		return errs
	}

	var invalid validator.ValidationErrors
	if !errors.As(err, &invalid) {
		errs["payload"] = "Invalid request body!"
		return errs
	}
	for _, fe := range invalid {
		errs[strings.ToLower(fe.Field())] = messageFor(fe)
	}
	return errs
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required!"
	case "email":
		return "Invalid email!"
	case "url":
		return "Invalid URL!"
	case "min":
		if fe.Kind().String() == "string" {
			return fmt.Sprintf("Must be at least %s characters long!", fe.Param())
		}
		return fmt.Sprintf("Must be at least %s!", fe.Param())
	case "max":
		if fe.Kind().String() == "string" {
			return fmt.Sprintf("Must be at most %s characters long!", fe.Param())
		}
		return fmt.Sprintf("Must be at most %s!", fe.Param())
	case "gte":
		return fmt.Sprintf("Must be %s or more!", fe.Param())
	case "lte":
		return fmt.Sprintf("Must be %s or less!", fe.Param())
	case "oneof":
		return "Invalid value!"
	default:
		return "Invalid value!"
	}
}
