package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return t.Entity == "" || e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Is enables errors.Is() comparison for ValidationError
func (e *ValidationError) Is(target error) bool {
	t, ok := target.(*ValidationError)
	if !ok {
		return false
	}
	return t.Field == "" || e.Field == t.Field
}

// Entity Not Found Errors
var (
	ErrPersonNotFound         = &NotFoundError{Entity: "person"}
	ErrUnavailabilityNotFound = &NotFoundError{Entity: "unavailability record"}
)

// Validation Errors
var (
	ErrInvalidDate = &ValidationError{Field: "date", Message: "must be formatted as YYYY-MM-DD"}
	ErrInvalidRole = &ValidationError{Field: "role", Message: "unknown duty role"}
)

// Scheduling Errors
var (
	// ErrNoEligibleCandidate marks a slot nobody on the roster can fill. It is
	// reported per slot and never aborts a generation run.
	ErrNoEligibleCandidate = errors.New("no eligible candidate for slot")
	// ErrSlotPersistence marks a slot whose assignment or counter write failed.
	ErrSlotPersistence = errors.New("failed to persist slot assignment")
)

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}
