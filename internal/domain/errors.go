package domain

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a validation failure
type ErrorKind string

const (
	// KindMissingField: a required input was absent or non-numeric
	KindMissingField ErrorKind = "MISSING_FIELD"
	// KindInvalidValue: a present input violates a numeric business rule
	KindInvalidValue ErrorKind = "INVALID_VALUE"
)

// ValidationError names the first offending field of a rejected input
type ValidationError struct {
	Kind  ErrorKind
	Field string
}

func (e *ValidationError) Error() string {
	switch e.Kind {
	case KindMissingField:
		return fmt.Sprintf("missing field: %s", e.Field)
	case KindInvalidValue:
		return fmt.Sprintf("invalid value: %s", e.Field)
	default:
		return fmt.Sprintf("validation failed: %s", e.Field)
	}
}

// MissingField returns a validation error for an absent field
func MissingField(field string) *ValidationError {
	return &ValidationError{Kind: KindMissingField, Field: field}
}

// InvalidValue returns a validation error for a field that breaks a business rule
func InvalidValue(field string) *ValidationError {
	return &ValidationError{Kind: KindInvalidValue, Field: field}
}

// IsMissingField reports whether err is a MissingField error for field.
// An empty field matches any field.
func IsMissingField(err error, field string) bool {
	return isKind(err, KindMissingField, field)
}

// IsInvalidValue reports whether err is an InvalidValue error for field.
// An empty field matches any field.
func IsInvalidValue(err error, field string) bool {
	return isKind(err, KindInvalidValue, field)
}

func isKind(err error, kind ErrorKind, field string) bool {
	var ve *ValidationError
	if !errors.As(err, &ve) {
		return false
	}
	return ve.Kind == kind && (field == "" || ve.Field == field)
}

var (
	// ErrNotFound is returned when a record does not exist or belongs to another user
	ErrNotFound = errors.New("not found")

	// ErrConflict is returned when a record collides with an existing one
	ErrConflict = errors.New("already exists")

	// ErrUnauthenticated is returned when an operation needs a user and none is known
	ErrUnauthenticated = errors.New("unauthenticated")
)
