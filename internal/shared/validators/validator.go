package validators

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validate is a type alias for validator.Validate.
type Validate = validator.Validate

// ValidationErrors is a type alias for validator.ValidationErrors.
type ValidationErrors = validator.ValidationErrors

// FieldError is a type alias for validator.FieldError.
type FieldError = validator.FieldError

// New creates a new validator instance that names fields after the given struct tag
// (e.g. "json" or "mapstructure"), falling back to the Go field name.
func New(tagName string) *Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get(tagName), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Describe flattens a validation error into readable entries such as "server.port (max=65535)".
// Errors that are not validation errors are returned as a single entry.
func Describe(err error) []string {
	var ve ValidationErrors
	if !errors.As(err, &ve) {
		return []string{err.Error()}
	}

	entries := make([]string, 0, len(ve))
	for _, e := range ve {
		entries = append(entries, describeField(e))
	}
	return entries
}

func describeField(e FieldError) string {
	// "Config.server.port" -> "server.port"
	field := e.Namespace()
	if _, rest, ok := strings.Cut(field, "."); ok {
		field = rest
	}

	if e.Param() == "" {
		return fmt.Sprintf("%s (%s)", field, e.Tag())
	}
	return fmt.Sprintf("%s (%s=%s)", field, e.Tag(), e.Param())
}
