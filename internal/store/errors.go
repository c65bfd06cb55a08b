package store

import (
	"errors"
	"fmt"

	"github.com/phrazzld/hbnb-api/internal/domain"
)

// Common store errors used across all repositories.
var (
	// ErrNotFound is returned when a requested entity does not exist in the
	// store. Repositories return an entity-specific error wrapping it
	// (e.g. domain.ErrUserNotFound).
	ErrNotFound = domain.ErrNotFound

	// ErrUnknownAttribute is returned by attribute lookups naming a field the
	// entity does not expose.
	ErrUnknownAttribute = errors.New("unknown attribute")
)

// IsNotFoundError checks if the error is any kind of "not found" error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// StoreError is a custom error type for store-specific errors with additional context.
type StoreError struct {
	Entity    string // The entity type (e.g., "user", "place")
	Operation string // The operation that failed (e.g., "update")
	Message   string
	Err       error
}

// Error implements the error interface for StoreError.
func (e *StoreError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s operation on %s failed: %s: %v", e.Operation, e.Entity, e.Message, e.Err)
	}
	return fmt.Sprintf("%s operation on %s failed: %s", e.Operation, e.Entity, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *StoreError) Unwrap() error {
	return e.Err
}

// NewStoreError creates a new StoreError with the given entity, operation, message, and wrapped error.
func NewStoreError(entity, operation, message string, err error) *StoreError {
	return &StoreError{
		Entity:    entity,
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
