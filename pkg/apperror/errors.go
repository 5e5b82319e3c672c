package apperror

import (
	"errors"
	"sort"
	"strings"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrUnauthorized       = errors.New("please authenticate")
	ErrInvalidToken       = errors.New("invalid token")
	ErrInvalidCredentials = errors.New("unable to login")
)

// ValidationError reports rejected input. Fields maps the JSON field name to
// the rule it failed.
type ValidationError struct {
	Message string
	Fields  map[string]string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return e.Message
	}
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return e.Message + ": " + strings.Join(names, ", ")
}

// NewValidationError builds a ValidationError without field details.
func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}

// FieldError builds a ValidationError for a single field.
func FieldError(field, rule string) *ValidationError {
	return &ValidationError{
		Message: "validation failed",
		Fields:  map[string]string{field: rule},
	}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var vErr *ValidationError
	return errors.As(err, &vErr)
}
