// Package apperr defines the error kinds surfaced by the application.
// Every failure is one of four kinds, matchable with errors.Is, so callers
// can distinguish bad input from missing records from corrupted data from
// storage trouble without parsing messages.
package apperr

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation marks malformed input caught before any storage write.
	ErrValidation = errors.New("validation failed")

	// ErrNotFound marks a referenced record that does not exist.
	ErrNotFound = errors.New("not found")

	// ErrDataIntegrity marks reference data that violates its own invariants.
	ErrDataIntegrity = errors.New("data integrity violation")

	// ErrStorage marks a database or transaction failure.
	ErrStorage = errors.New("storage failure")
)

// Validation returns a validation error with a formatted detail message.
func Validation(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// NotFound returns a not-found error naming the missing record.
func NotFound(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrNotFound, fmt.Sprintf(format, args...))
}

// DataIntegrity returns a data-integrity error describing the corruption.
func DataIntegrity(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrDataIntegrity, fmt.Sprintf(format, args...))
}

// Storage wraps an underlying database error with the storage kind.
// The cause stays reachable through errors.Unwrap for diagnosis.
func Storage(err error, format string, args ...any) error {
	return fmt.Errorf("%w: %s: %w", ErrStorage, fmt.Sprintf(format, args...), err)
}
