package domain

import (
	"math"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

// Field bounds shared by constructors and patches.
const (
	MaxNameLength        = 50
	MaxTitleLength       = 100
	MaxPasswordBytes     = 72 // bcrypt ignores anything past this
	MaxPrice             = 1_000_000.0
	MinLatitude          = -90.0
	MaxLatitude          = 90.0
	MinLongitude         = -180.0
	MaxLongitude         = 180.0
	MinRating            = 1
	MaxRating            = 5
	averageRatingDecimal = 10.0
)

var emailPattern = regexp.MustCompile(
	`^[A-Za-z0-9.!#$%&'*+/=?^_{|}~-]+@[A-Za-z0-9](?:[A-Za-z0-9-]*[A-Za-z0-9])?(?:\.[A-Za-z0-9](?:[A-Za-z0-9-]*[A-Za-z0-9])?)+$`,
)

// ValidEmail reports whether email has a local part, an @ and a dotted domain.
func ValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// ParseID parses a textual identifier. Anything that is not a UUID cannot
// name a stored entity, so callers treat ok == false as not found.
func ParseID(raw string) (uuid.UUID, bool) {
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}

func validateText(field, value string, maxLen int) error {
	if strings.TrimSpace(value) == "" {
		return NewValidationError(field, "cannot be empty", ErrEmptyField)
	}
	if maxLen > 0 && utf8.RuneCountInString(value) > maxLen {
		return NewValidationError(field, "is too long", ErrTooLong)
	}
	return nil
}

func validateEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return NewValidationError("email", "cannot be empty", ErrEmptyField)
	}
	if !ValidEmail(email) {
		return NewValidationError("email", "invalid email format", ErrInvalidEmail)
	}
	return nil
}

func validatePassword(password string) error {
	if strings.TrimSpace(password) == "" {
		return NewValidationError("password", "cannot be empty", ErrEmptyField)
	}
	if len(password) > MaxPasswordBytes {
		return NewValidationError("password", "must be at most 72 bytes long", ErrPasswordTooLong)
	}
	return nil
}

func validatePrice(price float64) error {
	if math.IsNaN(price) || price <= 0 || price >= MaxPrice {
		return NewValidationError("price", "must be positive and below 1000000", ErrInvalidPrice)
	}
	return nil
}

func validateLatitude(lat float64) error {
	if math.IsNaN(lat) || lat < MinLatitude || lat > MaxLatitude {
		return NewValidationError("latitude", "must be between -90 and 90", ErrInvalidLatitude)
	}
	return nil
}

func validateLongitude(lon float64) error {
	if math.IsNaN(lon) || lon < MinLongitude || lon > MaxLongitude {
		return NewValidationError("longitude", "must be between -180 and 180", ErrInvalidLongitude)
	}
	return nil
}

func validateRating(rating int) error {
	if rating < MinRating || rating > MaxRating {
		return NewValidationError("rating", "must be between 1 and 5", ErrInvalidRating)
	}
	return nil
}

// AverageRating returns the mean of ratings rounded to one decimal place,
// or 0 when there are none.
func AverageRating(ratings []int) float64 {
	if len(ratings) == 0 {
		return 0
	}
	total := 0
	for _, r := range ratings {
		total += r
	}
	mean := float64(total) / float64(len(ratings))
	return math.Round(mean*averageRatingDecimal) / averageRatingDecimal
}

// appendUnique appends id unless it is already present.
func appendUnique(ids []uuid.UUID, id uuid.UUID) []uuid.UUID {
	for _, existing := range ids {
		if existing == id {
			return ids
		}
	}
	return append(ids, id)
}

// removeID returns ids without any occurrence of id, preserving order.
func removeID(ids []uuid.UUID, id uuid.UUID) []uuid.UUID {
	out := make([]uuid.UUID, 0, len(ids))
	for _, existing := range ids {
		if existing != id {
			out = append(out, existing)
		}
	}
	return out
}

// UniqueIDs deduplicates ids keeping the first occurrence of each.
func UniqueIDs(ids []uuid.UUID) []uuid.UUID {
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		out = appendUnique(out, id)
	}
	return out
}

func cloneIDs(ids []uuid.UUID) []uuid.UUID {
	if ids == nil {
		return []uuid.UUID{}
	}
	out := make([]uuid.UUID, len(ids))
	copy(out, ids)
	return out
}

func now() time.Time {
	return time.Now().UTC()
}
