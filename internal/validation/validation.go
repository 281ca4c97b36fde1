// Package validation checks decoded request bodies against their struct tags.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/sbilibin2017/gw-recipe-atlas/internal/models"
)

var (
	validate *validator.Validate
	once     sync.Once
)

// Validator returns the shared validator. Field names in errors are the JSON names.
func Validator() *validator.Validate {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(f reflect.StructField) string {
			name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
			if name == "-" {
				return ""
			}
			return name
		})
		validate.RegisterValidation("role", validateRole)
	})
	return validate
}

func validateRole(fl validator.FieldLevel) bool {
	role := fl.Field().String()
	return role == models.RoleUser || role == models.RoleAdmin
}

// ValidateStruct validates s and returns a readable error listing every failed field.
func ValidateStruct(s any) error {
	if err := Validator().Struct(s); err != nil {
		return formatValidationError(err)
	}
	return nil
}

func formatValidationError(err error) error {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	messages := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		field := e.Field()
		switch e.Tag() {
		case "required":
			messages = append(messages, fmt.Sprintf("%s is required", field))
		case "min":
			messages = append(messages, fmt.Sprintf("%s must be at least %s", field, e.Param()))
		case "max":
			messages = append(messages, fmt.Sprintf("%s must be at most %s", field, e.Param()))
		case "email":
			messages = append(messages, fmt.Sprintf("%s must be a valid email address", field))
		case "oneof":
			messages = append(messages, fmt.Sprintf("%s must be one of [%s]", field, e.Param()))
		case "role":
			messages = append(messages, fmt.Sprintf("%s must be user or admin", field))
		default:
			messages = append(messages, fmt.Sprintf("%s failed on %s", field, e.Tag()))
		}
	}
	return errors.New(strings.Join(messages, "; "))
}
