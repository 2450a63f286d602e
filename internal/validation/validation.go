package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"
	"time"

	"service_marketplace/internal/model"

	"github.com/go-playground/validator/v10"
)

// FieldError points at one offending value in a payload
type FieldError struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

// ValidationError is returned for malformed or missing input
type ValidationError struct {
	Fields []FieldError `json:"fields"`
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		if f.Path == "" {
			msgs = append(msgs, f.Message)
			continue
		}
		msgs = append(msgs, fmt.Sprintf("%s: %s", f.Path, f.Message))
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// NewFieldError builds a ValidationError with a single field
func NewFieldError(path, message string) *ValidationError {
	return &ValidationError{Fields: []FieldError{{Path: path, Message: message}}}
}

// Validator wraps go-playground/validator with the marketplace rules registered
type Validator struct {
	validate *validator.Validate
}

// New creates a Validator that reports JSON field names
func New() *Validator {
	v := validator.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	registerRules(v)

	return &Validator{validate: v}
}

// Validate checks payload against its `validate` tags.
// Failures come back as *ValidationError.
func (v *Validator) Validate(payload interface{}) error {
	err := v.validate.Struct(payload)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	out := &ValidationError{}
	for _, fe := range validationErrors {
		out.Fields = append(out.Fields, FieldError{
			Path:    fieldPath(fe.Namespace()),
			Message: message(fe),
		})
	}
	return out
}

// FromDecodeError turns a JSON decoding failure into a ValidationError.
// Other errors are returned unchanged.
func FromDecodeError(err error) error {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return NewFieldError(typeErr.Field, fmt.Sprintf("expected %s, got %s", typeErr.Type.String(), typeErr.Value))
	}
	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return NewFieldError("", "malformed JSON body")
	}
	var timeErr *time.ParseError
	if errors.As(err, &timeErr) {
		return NewFieldError("", fmt.Sprintf("invalid timestamp %s, expected RFC 3339", timeErr.Value))
	}
	if errors.Is(err, io.EOF) {
		return NewFieldError("", "request body is required")
	}
	return NewFieldError("", err.Error())
}

// fieldPath drops the top-level struct name from a validator namespace,
// "InsertWorker.availability.days[0]" becomes "availability.days[0]".
func fieldPath(namespace string) string {
	if i := strings.Index(namespace, "."); i >= 0 {
		return namespace[i+1:]
	}
	return namespace
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters long", fe.Param())
		}
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("must contain at least %s item(s)", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "eq":
		return fmt.Sprintf("must be %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", strings.ReplaceAll(fe.Param(), " ", ", "))
	case "service_category":
		return fmt.Sprintf("must be one of: %s", strings.Join(model.ServiceCategories, ", "))
	case "weekday":
		return fmt.Sprintf("must be one of: %s", strings.Join(model.AvailableDays, ", "))
	case "time_slot":
		return "must be one of the offered time slots"
	default:
		return fmt.Sprintf("failed on '%s'", fe.Tag())
	}
}
