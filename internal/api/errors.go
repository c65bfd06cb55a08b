package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/hbnb-api/internal/api/shared"
	"github.com/phrazzld/hbnb-api/internal/domain"
)

// Messages for failures that are not tied to a domain error.
const (
	msgInvalidRequest = "Invalid request format"
	msgNoData         = "No data provided"
	msgUnexpected     = "An unexpected error occurred"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error kind. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	var validationErrs validator.ValidationErrors

	switch {
	case err == nil:
		return http.StatusInternalServerError

	// Bad request errors
	case domain.IsValidation(err), errors.As(err, &validationErrs):
		return http.StatusBadRequest

	// Not found errors
	case domain.IsNotFound(err):
		return http.StatusNotFound

	// Conflict errors
	case domain.IsConflict(err):
		return http.StatusConflict

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return msgUnexpected
	}

	var validationErr *domain.ValidationError
	var validationErrs validator.ValidationErrors

	switch {
	// Field-level validation failures describe client input and are safe to echo.
	case errors.As(err, &validationErr):
		return validationErr.Error()

	case errors.As(err, &validationErrs):
		return SanitizeValidationError(validationErrs)

	case errors.Is(err, domain.ErrMalformedNumber):
		return "Invalid number format"

	case errors.Is(err, domain.ErrInvalidRating):
		return "Rating must be an integer between 1 and 5"

	case domain.IsValidation(err):
		return "Invalid input"

	// Not found errors; the owner check comes first because it wraps ErrUserNotFound.
	case errors.Is(err, domain.ErrOwnerNotFound):
		return "Owner not found"

	case errors.Is(err, domain.ErrUserNotFound):
		return "User not found"

	case errors.Is(err, domain.ErrPlaceNotFound):
		return "Place not found"

	case errors.Is(err, domain.ErrAmenityNotFound):
		return "Amenity not found"

	case errors.Is(err, domain.ErrReviewNotFound):
		return "Review not found"

	case domain.IsNotFound(err):
		return "Resource not found"

	// Conflict errors
	case errors.Is(err, domain.ErrEmailExists):
		return "Email already registered"

	case errors.Is(err, domain.ErrDuplicateReview):
		return "User has already reviewed this place"

	case domain.IsConflict(err):
		return "Conflict"

	default:
		return msgUnexpected
	}
}

// SanitizeValidationError turns request validation failures into a
// user-friendly message naming the first offending field.
func SanitizeValidationError(errs validator.ValidationErrors) string {
	if len(errs) == 0 {
		return "Validation error"
	}
	fe := errs[0]
	return fmt.Sprintf("Invalid %s: %s", fe.Field(), getValidationTagMessage(fe.Tag()))
}

// getValidationTagMessage maps validation tags to user-friendly error messages
func getValidationTagMessage(tag string) string {
	switch tag {
	case "required":
		return "required field"
	case "email":
		return "invalid email format"
	case "min":
		return "too short"
	case "max":
		return "too long"
	case "oneof":
		return "invalid value"
	default:
		return "validation failed"
	}
}

// HandleAPIError writes the response for err using the status and message
// mappings above. A non-empty fallback replaces the generic message for
// server errors.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	status := MapErrorToStatusCode(err)
	message := GetSafeErrorMessage(err)
	if status == http.StatusInternalServerError && fallback != "" {
		message = fallback
	}
	shared.RespondWithErrorAndLog(w, r, status, message, err)
}
