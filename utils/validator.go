package utils

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

// TranslateValidationError flattens validator errors into one readable line.
func TranslateValidationError(err error) string {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		var messages []string
		for _, fe := range ve {
			field := fe.Field()
			switch fe.Tag() {
			case "required":
				messages = append(messages, field+" is required")
			case "min":
				messages = append(messages, field+" must be at least "+fe.Param())
			case "max":
				messages = append(messages, field+" must be at most "+fe.Param())
			case "gt":
				messages = append(messages, field+" must be greater than "+fe.Param())
			case "oneof":
				messages = append(messages, field+" must be one of: "+fe.Param())
			default:
				messages = append(messages, field+" is invalid")
			}
		}
		return strings.Join(messages, ", ")
	}
	return err.Error()
}
