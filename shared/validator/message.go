package validator

import (
	"errors"
	"strings"

	val "github.com/go-playground/validator/v10"
)

var messages = map[string]string{
	"required":    "{field} is required",
	"gte":         "{field} must be greater than or equal to {param}",
	"lte":         "{field} must be less than or equal to {param}",
	"min":         "{field} must be at least {param}",
	"max":         "{field} must be at most {param}",
	"oneof":       "{field} must be one of {param}",
	"email":       "{field} must be a valid email address",
	"e164":        "{field} must be a phone number in E.164 format",
	"uuid":        "{field} must be a valid UUID",
	"url":         "{field} must be a valid URL",
	"datetime":    "{field} must match the format {param}",
	"nefield":     "{field} must differ from {param}",
	"mimetypes":   "{field} must be one of {param}",
	"maxfilesize": "{field} must be at most {param} MB",
}

// message reports the first failed rule in a readable form.
func message(err error) string {
	var errs val.ValidationErrors
	if !errors.As(err, &errs) || len(errs) == 0 {
		return err.Error()
	}

	first := errs[0]

	template, ok := messages[first.Tag()]
	if !ok {
		return first.Error()
	}

	return strings.NewReplacer("{field}", first.Field(), "{param}", first.Param()).Replace(template)
}
