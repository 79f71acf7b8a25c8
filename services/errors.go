package services

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/kendall-kelly/laundry-api/schemas"
	"gorm.io/gorm"
)

// ErrorKind classifies a service failure
type ErrorKind string

const (
	KindInvalidID        ErrorKind = "INVALID_ID"
	KindValidationFailed ErrorKind = "VALIDATION_FAILED"
	KindNotFound         ErrorKind = "NOT_FOUND"
	KindConflict         ErrorKind = "CONFLICT"
	KindHasDependents    ErrorKind = "HAS_DEPENDENTS"
	KindInternal         ErrorKind = "INTERNAL"
)

// ServiceError is returned by every service operation that fails
type ServiceError struct {
	Kind    ErrorKind
	Message string
	Details []schemas.Issue
	Err     error
}

func (e *ServiceError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}

// StatusCode maps the error kind to the HTTP status sent to clients
func (e *ServiceError) StatusCode() int {
	switch e.Kind {
	case KindInvalidID, KindValidationFailed, KindHasDependents:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

func invalidID(entity string) *ServiceError {
	return &ServiceError{Kind: KindInvalidID, Message: "Invalid " + entity + " ID"}
}

func notFound(message string) *ServiceError {
	return &ServiceError{Kind: KindNotFound, Message: message}
}

func conflict(message string) *ServiceError {
	return &ServiceError{Kind: KindConflict, Message: message}
}

func hasDependents(message string) *ServiceError {
	return &ServiceError{Kind: KindHasDependents, Message: message}
}

func internal(message string, err error) *ServiceError {
	return &ServiceError{Kind: KindInternal, Message: message, Err: err}
}

// ValidationFailed wraps schema issues in a ServiceError
func ValidationFailed(issues []schemas.Issue) *ServiceError {
	return &ServiceError{Kind: KindValidationFailed, Message: "Validation failed", Details: issues}
}

// validateInput normalizes input in place, runs its schema and converts a failure
func validateInput(input interface{}) error {
	schemas.Normalize(input)
	err := schemas.Validate(input)
	if err == nil {
		return nil
	}
	var validationErr *schemas.ValidationError
	if errors.As(err, &validationErr) {
		return ValidationFailed(validationErr.Issues)
	}
	return internal("Failed to validate input", err)
}

// ParseID parses a positive integer identifier taken from a URL
func ParseID(raw, entity string) (uint, error) {
	id, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 64)
	if err != nil || id == 0 {
		return 0, invalidID(entity)
	}
	return uint(id), nil
}

// isUniqueViolation reports whether err came from a unique index. Both drivers
// translate it to gorm.ErrDuplicatedKey when TranslateError is on.
func isUniqueViolation(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

// AsServiceError returns err as a *ServiceError, wrapping unknown errors as internal
func AsServiceError(err error, fallback string) *ServiceError {
	var serviceErr *ServiceError
	if errors.As(err, &serviceErr) {
		return serviceErr
	}
	return internal(fallback, err)
}
