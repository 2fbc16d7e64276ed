// Package schema checks decoded documents and engine responses against the
// `validate` struct tags of their types. Field names in errors are the JSON
// names, so a violation reads like a path into the original payload.
package schema

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/kailas-cloud/jobsearch/internal/domain"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		switch name {
		case "-":
			return ""
		case "":
			return f.Name
		}
		return name
	})
	// scalar: a decoded JSON value that is a string, number or boolean.
	if err := v.RegisterValidation("scalar", scalar); err != nil {
		panic(err)
	}
	return v
}

func scalar(fl validator.FieldLevel) bool {
	switch fl.Field().Kind() {
	case reflect.String, reflect.Bool,
		reflect.Int, reflect.Int64, reflect.Uint64, reflect.Float64:
		return true
	default:
		return false
	}
}

// Validate runs the struct tags of v and joins every violation into one error.
func Validate(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var fields validator.ValidationErrors
	if !errors.As(err, &fields) {
		return err
	}
	root := reflect.Indirect(reflect.ValueOf(v)).Type().Name() + "."
	msgs := make([]string, 0, len(fields))
	for _, fe := range fields {
		msgs = append(msgs, describe(strings.TrimPrefix(fe.Namespace(), root), fe))
	}
	return errors.New(strings.Join(msgs, "; "))
}

// Check is Validate for engine payloads: a violation becomes a decode error
// for shape.
func Check(shape string, v any) error {
	if err := Validate(v); err != nil {
		return domain.NewDecodeError(shape, err)
	}
	return nil
}

func describe(path string, fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return path + " is required"
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s], got %v", path, fe.Param(), fe.Value())
	case "min":
		return fmt.Sprintf("%s must be at least %s", path, fe.Param())
	case "scalar":
		return path + " must be a string, number or boolean"
	default:
		return fmt.Sprintf("%s failed %s", path, fe.Tag())
	}
}
