// Package validation configures the struct validator shared by the usecases and the HTTP layer.
package validation

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	"bootcamper/internal/domain/entity"
	domainerrors "bootcamper/internal/domain/errors"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

var (
	once     sync.Once //nolint:gochecknoglobals
	instance *validator.Validate
)

// Validator returns the process-wide validator with the custom tags registered.
func Validator() *validator.Validate {
	once.Do(func() {
		instance = newValidator()
	})

	return instance
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report JSON names so messages match the request body.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}

		return name
	})

	_ = v.RegisterValidation("career", func(fl validator.FieldLevel) bool {
		return entity.Career(fl.Field().String()).IsValid()
	})
	_ = v.RegisterValidation("skill", func(fl validator.FieldLevel) bool {
		return entity.Skill(fl.Field().String()).IsValid()
	})
	_ = v.RegisterValidation("role", func(fl validator.FieldLevel) bool {
		return entity.Role(fl.Field().String()).IsValid()
	})

	return v
}

// Struct validates s and converts failures into ErrValidationFailed listing every offending field.
func Struct(s any) error {
	err := Validator().Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return errors.Wrap(err, "failed to validate struct")
	}

	messages := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		messages = append(messages, fmt.Sprintf("%s: %s", fe.Field(), describe(fe)))
	}

	return domainerrors.ErrValidationFailed.WithMessagef("%s", strings.Join(messages, "; "))
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "max":
		if fe.Kind() == reflect.String {
			return "must be at most " + fe.Param() + " characters"
		}
		if fe.Kind() == reflect.Slice {
			return "must have at most " + fe.Param() + " items"
		}

		return "must be at most " + fe.Param()
	case "min":
		if fe.Kind() == reflect.String {
			return "must be at least " + fe.Param() + " characters"
		}
		if fe.Kind() == reflect.Slice {
			return "must have at least " + fe.Param() + " items"
		}

		return "must be at least " + fe.Param()
	case "gte":
		return "must be greater than or equal to " + fe.Param()
	case "email":
		return "must be a valid email"
	case "http_url", "url":
		return "must be a valid URL with HTTP or HTTPS"
	case "oneof":
		return "must be one of [" + fe.Param() + "]"
	case "career":
		return fmt.Sprintf("%q is not a supported career", fe.Value())
	case "skill":
		return "must be beginner, intermediate or advanced"
	case "role":
		return "must be user or publisher"
	default:
		return "is invalid"
	}
}
