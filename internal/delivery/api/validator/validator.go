// Package validator plugs go-playground/validator into echo.
package validator

import (
	"reflect"
	"strings"

	"foodmarket/internal/errors"

	"github.com/go-playground/validator/v10"
)

// CustomValidator implements echo.Validator.
type CustomValidator struct {
	validate *validator.Validate
}

// New creates a validator that reports fields by their JSON names.
func New() *CustomValidator {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}

		return name
	})

	return &CustomValidator{validate: validate}
}

// Validate checks i against its `validate` tags.
func (v *CustomValidator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	fieldErrs, ok := errors.AsType[validator.ValidationErrors](err)
	if !ok {
		return errors.WithStack(err)
	}

	messages := make([]string, 0, len(fieldErrs))
	for _, fieldErr := range fieldErrs {
		messages = append(messages, describe(fieldErr))
	}

	return errors.New(strings.Join(messages, "; "))
}

func describe(fieldErr validator.FieldError) string {
	field := fieldErr.Field()
	switch fieldErr.Tag() {
	case "required":
		return field + " is required"
	case "oneof":
		return field + " must be one of: " + fieldErr.Param()
	case "min", "gte":
		return field + " must be at least " + fieldErr.Param()
	case "gt":
		return field + " must be greater than " + fieldErr.Param()
	case "max", "lte":
		return field + " must be at most " + fieldErr.Param()
	case "email":
		return field + " must be a valid email address"
	case "uuid", "uuid4":
		return field + " must be a UUID"
	case "datetime":
		return field + " must match " + fieldErr.Param()
	default:
		return field + " is invalid"
	}
}
