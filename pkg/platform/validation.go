package platform

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-playground/validator/v10"
)

// Validator checks a payload before it is sent. A nil or empty result means
// the payload is valid.
type Validator[T any] interface {
	Validate(value T) []ValidationIssue
}

// ValidatorFunc adapts a function to Validator.
type ValidatorFunc[T any] func(value T) []ValidationIssue

// Validate implements Validator.
func (f ValidatorFunc[T]) Validate(value T) []ValidationIssue {
	return f(value)
}

var structValidator = newStructValidator()

func newStructValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		tag := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if tag == "" || tag == "-" {
			return f.Name
		}

		return tag
	})

	return v
}

type structSchema[T any] struct{}

// NewStructSchema returns a Validator driven by `validate` struct tags.
// T must be a struct or a pointer to a struct. Issues are reported by JSON
// field path.
func NewStructSchema[T any]() Validator[T] {
	return structSchema[T]{}
}

func (structSchema[T]) Validate(value T) []ValidationIssue {
	if isNilValue(value) {
		return []ValidationIssue{{Reason: "payload is required"}}
	}

	err := structValidator.Struct(value)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return []ValidationIssue{{Reason: err.Error()}}
	}

	issues := make([]ValidationIssue, 0, len(fieldErrs))
	for _, fieldErr := range fieldErrs {
		issues = append(issues, ValidationIssue{
			Field:  fieldPath(fieldErr.Namespace()),
			Reason: validationMessage(fieldErr),
		})
	}

	return issues
}

// fieldPath drops the leading struct name from a validator namespace.
func fieldPath(namespace string) string {
	_, path, found := strings.Cut(namespace, ".")
	if !found {
		return namespace
	}

	return path
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "required_if", "required_with":
		return "is required"
	case "min":
		if fe.Kind() == reflect.String || fe.Kind() == reflect.Slice {
			return fmt.Sprintf("must have at least %s characters or items", fe.Param())
		}

		return "must be at least " + fe.Param()
	case "max":
		if fe.Kind() == reflect.String || fe.Kind() == reflect.Slice {
			return fmt.Sprintf("must have at most %s characters or items", fe.Param())
		}

		return "must be at most " + fe.Param()
	case "gte":
		return "must be greater than or equal to " + fe.Param()
	case "lte":
		return "must be less than or equal to " + fe.Param()
	case "gt":
		return "must be greater than " + fe.Param()
	case "len":
		return fmt.Sprintf("must have length %s", fe.Param())
	case "oneof":
		return "must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "email":
		return "must be a valid email"
	case "e164":
		return "must be an E.164 phone number"
	case "url", "http_url":
		return "must be a valid URL"
	case "hexcolor":
		return "must be a hex color"
	case "timezone":
		return "must be an IANA time zone"
	case "bcp47_language_tag":
		return "must be a BCP 47 language tag"
	case "uppercase":
		return "must be uppercase"
	case "numeric":
		return "must be numeric"
	}

	return "is invalid"
}

type ruleSchema[T any] struct {
	rules func(value T) error
}

// NewRuleSchema returns a Validator built from ozzo-validation rules. The
// rules function usually wraps validation.ValidateStruct. Nested
// validation.Errors are flattened into dotted field paths.
func NewRuleSchema[T any](rules func(value T) error) Validator[T] {
	return ruleSchema[T]{rules: rules}
}

func (s ruleSchema[T]) Validate(value T) []ValidationIssue {
	if isNilValue(value) {
		return []ValidationIssue{{Reason: "payload is required"}}
	}

	err := s.rules(value)
	if err == nil {
		return nil
	}

	return flattenRuleErrors("", err)
}

func flattenRuleErrors(prefix string, err error) []ValidationIssue {
	var ruleErrs validation.Errors
	if !errors.As(err, &ruleErrs) {
		return []ValidationIssue{{Field: prefix, Reason: err.Error()}}
	}

	keys := make([]string, 0, len(ruleErrs))
	for key := range ruleErrs {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	var issues []ValidationIssue

	for _, key := range keys {
		path := key
		if prefix != "" {
			path = prefix + "." + key
		}

		issues = append(issues, flattenRuleErrors(path, ruleErrs[key])...)
	}

	return issues
}

// ComposeValidators runs every validator and concatenates their issues.
// Nil validators are skipped.
func ComposeValidators[T any](validators ...Validator[T]) Validator[T] {
	return ValidatorFunc[T](func(value T) []ValidationIssue {
		if isNilValue(value) {
			return []ValidationIssue{{Reason: "payload is required"}}
		}

		var issues []ValidationIssue

		for _, v := range validators {
			if v == nil {
				continue
			}

			issues = append(issues, v.Validate(value)...)
		}

		return issues
	})
}

func isNilValue(value any) bool {
	if value == nil {
		return true
	}

	rv := reflect.ValueOf(value)

	return rv.Kind() == reflect.Pointer && rv.IsNil()
}
