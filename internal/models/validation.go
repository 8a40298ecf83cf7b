package models

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var slugRe = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

// Validator returns the shared validator with the slug tag registered and
// field names reported by their JSON name.
func Validator() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
			if name == "-" || name == "" {
				return lowerFirst(f.Name)
			}
			return name
		})
		_ = v.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
			return slugRe.MatchString(fl.Field().String())
		})
		v.RegisterStructValidation(func(sl validator.StructLevel) {
			u := sl.Current().Interface().(CredentialsUpdate)
			if u.NewUsername == "" && u.NewPassword == "" {
				sl.ReportError(u.NewUsername, "newUsername", "NewUsername", "required_without", "newPassword")
			}
		}, CredentialsUpdate{})
		validate = v
	})
	return validate
}

// IsSlug reports whether s is lowercase words joined by single hyphens.
func IsSlug(s string) bool { return slugRe.MatchString(s) }

// ValidationError lists the problems found in a value, one per field.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Problems, "; ")
}

// Validate checks v against its validate tags. The returned error is nil or
// a *ValidationError.
func Validate(v any) error {
	err := Validator().Struct(v)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return &ValidationError{Problems: []string{err.Error()}}
	}
	problems := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		problems = append(problems, describe(fe))
	}
	return &ValidationError{Problems: problems}
}

func describe(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "required_without":
		return fmt.Sprintf("%s or %s is required", field, fe.Param())
	case "email":
		return field + " must be a valid email address"
	case "slug":
		return field + " must be lowercase letters, digits and hyphens"
	case "uri":
		return field + " must be a valid URL"
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	case "eqfield":
		return fmt.Sprintf("%s must match %s", field, lowerFirst(fe.Param()))
	}
	return fmt.Sprintf("%s is invalid (%s)", field, fe.Tag())
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
