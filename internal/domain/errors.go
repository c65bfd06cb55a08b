package domain

import (
	"errors"
	"fmt"
)

// Error kinds. Every error returned by the domain and service layers wraps
// exactly one of these, so callers can classify failures with errors.Is.
var (
	// ErrValidation is returned when input is malformed or out of range.
	// It is usually carried by a *ValidationError naming the offending field.
	ErrValidation = errors.New("validation failed")

	// ErrNotFound is returned when an identifier does not resolve.
	ErrNotFound = errors.New("not found")

	// ErrConflict is returned when an operation would violate a uniqueness
	// or business rule.
	ErrConflict = errors.New("conflict")
)

// Validation causes. Each wraps ErrValidation.
var (
	ErrEmptyField       = fmt.Errorf("%w: field cannot be empty", ErrValidation)
	ErrTooLong          = fmt.Errorf("%w: field is too long", ErrValidation)
	ErrInvalidEmail     = fmt.Errorf("%w: invalid email format", ErrValidation)
	ErrPasswordTooLong  = fmt.Errorf("%w: password must be at most 72 bytes long", ErrValidation)
	ErrInvalidPrice     = fmt.Errorf("%w: price out of range", ErrValidation)
	ErrInvalidLatitude  = fmt.Errorf("%w: latitude must be between -90 and 90", ErrValidation)
	ErrInvalidLongitude = fmt.Errorf("%w: longitude must be between -180 and 180", ErrValidation)
	ErrInvalidRating    = fmt.Errorf("%w: rating must be an integer between 1 and 5", ErrValidation)

	// ErrMalformedNumber is returned when a numeric field cannot be parsed at
	// all, as opposed to parsing fine but falling outside its bounds.
	ErrMalformedNumber = fmt.Errorf("%w: malformed number", ErrValidation)
)

// Entity-specific not found errors.
var (
	ErrUserNotFound    = fmt.Errorf("%w: user", ErrNotFound)
	ErrPlaceNotFound   = fmt.Errorf("%w: place", ErrNotFound)
	ErrAmenityNotFound = fmt.Errorf("%w: amenity", ErrNotFound)
	ErrReviewNotFound  = fmt.Errorf("%w: review", ErrNotFound)

	// ErrOwnerNotFound is returned when a place references an unknown owner.
	ErrOwnerNotFound = fmt.Errorf("%w: owner", ErrUserNotFound)
)

// Conflict errors.
var (
	// ErrEmailExists is returned when an email is already held by another user.
	ErrEmailExists = fmt.Errorf("%w: email already registered", ErrConflict)

	// ErrDuplicateReview is returned when a user reviews the same place twice.
	ErrDuplicateReview = fmt.Errorf("%w: user has already reviewed this place", ErrConflict)
)

// ValidationError describes a single invalid field.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError creates a ValidationError for field. If err is nil the
// error still unwraps to ErrValidation.
func NewValidationError(field, message string, err error) *ValidationError {
	if err == nil {
		err = ErrValidation
	}
	return &ValidationError{Field: field, Message: message, Err: err}
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("invalid %s: %v", e.Field, e.Err)
	}
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// Unwrap returns the wrapped cause so errors.Is can reach ErrValidation.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// IsValidation reports whether err is any kind of validation failure.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}

// IsNotFound reports whether err is any kind of not found failure.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsConflict reports whether err is any kind of conflict.
func IsConflict(err error) bool {
	return errors.Is(err, ErrConflict)
}
