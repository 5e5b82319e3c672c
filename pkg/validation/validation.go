// Package validation wraps go-playground/validator with the rules shared by
// the account and task endpoints and converts failures into
// apperror.ValidationError values keyed by JSON field name.
package validation

import (
	"encoding/json"
	"errors"
	"reflect"
	"slices"
	"strings"

	"taskmanager-backend/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report JSON names instead of Go field names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		switch name {
		case "-":
			return ""
		case "":
			return fld.Name
		}
		return name
	})

	// nopassword rejects values containing the word "password" in any case
	_ = v.RegisterValidation("nopassword", func(fl validator.FieldLevel) bool {
		return !strings.Contains(strings.ToLower(fl.Field().String()), "password")
	})

	return v
}

// Struct validates s against its `validate` tags.
func Struct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	fields := make(map[string]string, len(fieldErrs))
	for _, fe := range fieldErrs {
		fields[fe.Field()] = fe.Tag()
	}
	return &apperror.ValidationError{Message: "validation failed", Fields: fields}
}

// DecodeAllowed unmarshals the JSON object in data into dst, failing before
// any decoding when the object carries a key outside allowed.
func DecodeAllowed(data []byte, allowed []string, dst any) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return apperror.NewValidationError("invalid JSON body")
	}

	var rejected map[string]string
	for key := range raw {
		if slices.Contains(allowed, key) {
			continue
		}
		if rejected == nil {
			rejected = make(map[string]string)
		}
		rejected[key] = "not allowed"
	}
	if rejected != nil {
		return &apperror.ValidationError{Message: "invalid updates", Fields: rejected}
	}

	if err := json.Unmarshal(data, dst); err != nil {
		return FromBindError(err)
	}
	return nil
}

// FromBindError turns a JSON decoding failure into a ValidationError.
func FromBindError(err error) error {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return apperror.FieldError(typeErr.Field, "type")
	}
	return apperror.NewValidationError("invalid JSON body")
}
