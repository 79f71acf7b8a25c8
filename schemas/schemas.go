// Package schemas holds the input shapes accepted for every entity and the
// rules they are checked against. The server binds requests through the same
// validator the client uses before sending, so both report identical issues.
package schemas

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Issue describes one violated rule on one field
type Issue struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

// ValidationError is returned when an input does not satisfy its schema
type ValidationError struct {
	Issues []Issue
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		parts = append(parts, issue.Field+": "+issue.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Normalizer is implemented by inputs that tidy their own fields (trimming,
// lowercasing) before the rules run.
type Normalizer interface {
	Normalize()
}

// Normalize tidies input in place when it is a pointer to a Normalizer
func Normalize(input interface{}) {
	if n, ok := input.(Normalizer); ok {
		n.Normalize()
	}
}

// messenger is implemented by inputs that carry their own error messages,
// keyed by "<json field>.<rule>".
type messenger interface {
	messages() map[string]string
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.SetTagName("binding")
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		switch name {
		case "-":
			return ""
		case "":
			return fld.Name
		}
		return name
	})
	return v
}

// Validate checks input against its binding rules. A rule violation yields a
// *ValidationError; anything else means input was not a struct.
func Validate(input interface{}) error {
	err := validate.Struct(input)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	msgs := map[string]string{}
	if m, ok := input.(messenger); ok {
		msgs = m.messages()
	}

	issues := make([]Issue, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msg, ok := msgs[fe.Field()+"."+fe.Tag()]
		if !ok {
			msg = defaultMessage(fe)
		}
		issues = append(issues, Issue{Field: fe.Field(), Rule: fe.Tag(), Message: msg})
	}
	return &ValidationError{Issues: issues}
}

func defaultMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required.", fe.Field())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters.", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters.", fe.Field(), fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s.", fe.Field(), fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be at least %s.", fe.Field(), fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s.", fe.Field(), strings.ReplaceAll(fe.Param(), " ", ", "))
	case "email":
		return fmt.Sprintf("%s must be a valid email.", fe.Field())
	}
	return fmt.Sprintf("%s is invalid.", fe.Field())
}

// FromBindError converts an error produced while decoding and binding a JSON
// body into a *ValidationError.
func FromBindError(err error) *ValidationError {
	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return validationErr
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		field := typeErr.Field
		if field == "" {
			field = "body"
		}
		return &ValidationError{Issues: []Issue{{
			Field:   field,
			Rule:    "type",
			Message: fmt.Sprintf("%s must be a %s.", field, typeErr.Type.String()),
		}}}
	}

	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) || errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return &ValidationError{Issues: []Issue{{
			Field:   "body",
			Rule:    "json",
			Message: "Request body must be valid JSON.",
		}}}
	}

	return &ValidationError{Issues: []Issue{{Field: "body", Rule: "invalid", Message: err.Error()}}}
}

// StructValidator plugs the schema rules into gin's binding package
// (binding.Validator = schemas.StructValidator{}).
type StructValidator struct{}

// ValidateStruct normalizes and validates structs and pointers to structs,
// ignoring anything else
func (StructValidator) ValidateStruct(obj interface{}) error {
	if obj == nil {
		return nil
	}
	Normalize(obj)
	value := reflect.ValueOf(obj)
	for value.Kind() == reflect.Ptr {
		if value.IsNil() {
			return nil
		}
		value = value.Elem()
	}
	if value.Kind() != reflect.Struct {
		return nil
	}
	return Validate(obj)
}

// Engine returns the underlying validator
func (StructValidator) Engine() interface{} {
	return validate
}
