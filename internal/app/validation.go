package app

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"elhamas/internal/domain"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		f := fl.Field()
		if f.Kind() != reflect.String {
			return true
		}
		return strings.TrimSpace(f.String()) != ""
	})
	return v
}

// validateInput checks every field of in.
func validateInput(in any) error {
	return firstError(validate.Struct(in))
}

// validatePresent checks only the fields the caller submitted (non-nil pointers).
func validatePresent(in any) error {
	fields := presentFields(in)
	if len(fields) == 0 {
		return nil
	}
	return firstError(validate.StructPartial(in, fields...))
}

// validateFields checks the named Go fields whether or not they were submitted.
func validateFields(in any, fields ...string) error {
	return firstError(validate.StructPartial(in, fields...))
}

func presentFields(in any) []string {
	v := reflect.Indirect(reflect.ValueOf(in))
	if v.Kind() != reflect.Struct {
		return nil
	}
	var out []string
	for i := 0; i < v.NumField(); i++ {
		f := v.Field(i)
		if f.Kind() == reflect.Pointer && !f.IsNil() {
			out = append(out, v.Type().Field(i).Name)
		}
	}
	return out
}

// firstError turns validator output into a single *domain.ValidationError.
func firstError(err error) error {
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}
	fe := verrs[0]
	return &domain.ValidationError{Field: fe.Field(), Message: message(fe)}
}

func message(fe validator.FieldError) string {
	name := fe.Field()
	isText := fe.Kind() == reflect.String
	switch fe.Tag() {
	case "required", "notblank":
		return fmt.Sprintf("%s is required", name)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", name)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", name, strings.ReplaceAll(fe.Param(), " ", ", "))
	case "len":
		if isText {
			return fmt.Sprintf("%s must be exactly %s characters", name, fe.Param())
		}
		return fmt.Sprintf("%s must have %s items", name, fe.Param())
	case "max":
		if isText {
			return fmt.Sprintf("%s must be at most %s characters", name, fe.Param())
		}
		return fmt.Sprintf("%s must be at most %s", name, fe.Param())
	case "min", "gte":
		return fmt.Sprintf("%s must be at least %s", name, fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", name, fe.Param())
	}
	return fmt.Sprintf("%s is invalid", name)
}
