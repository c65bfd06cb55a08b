package domain

import (
	"time"

	"github.com/google/uuid"
)

// Review is a user's rating and comment about a place.
// UserID and PlaceID are fixed at creation.
type Review struct {
	ID        uuid.UUID `json:"id"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	UserID    uuid.UUID `json:"user_id"`
	PlaceID   uuid.UUID `json:"place_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewReview creates a new Review with a generated ID and fresh timestamps.
// Returns a *ValidationError if any field is invalid.
func NewReview(rating int, comment string, userID, placeID uuid.UUID) (*Review, error) {
	ts := now()
	review := &Review{
		ID:        uuid.New(),
		Rating:    rating,
		Comment:   comment,
		UserID:    userID,
		PlaceID:   placeID,
		CreatedAt: ts,
		UpdatedAt: ts,
	}

	if err := review.Validate(); err != nil {
		return nil, err
	}

	return review, nil
}

// Validate checks if the Review has valid data.
func (r *Review) Validate() error {
	if err := validateRating(r.Rating); err != nil {
		return err
	}
	if err := validateText("comment", r.Comment, 0); err != nil {
		return err
	}
	if r.UserID == uuid.Nil {
		return NewValidationError("user_id", "cannot be empty", ErrEmptyField)
	}
	if r.PlaceID == uuid.Nil {
		return NewValidationError("place_id", "cannot be empty", ErrEmptyField)
	}
	return nil
}

// GetID returns the review's identifier.
func (r *Review) GetID() uuid.UUID { return r.ID }

// Touch refreshes the update timestamp.
func (r *Review) Touch() { r.UpdatedAt = now() }

// Attribute exposes the fields that may be used for lookups.
func (r *Review) Attribute(name string) (any, bool) {
	switch name {
	case "id":
		return r.ID, true
	case "rating":
		return r.Rating, true
	case "user_id":
		return r.UserID, true
	case "place_id":
		return r.PlaceID, true
	default:
		return nil, false
	}
}

// Clone returns a copy of the review.
func (r *Review) Clone() *Review {
	c := *r
	return &c
}

// ReviewPatch lists the review fields that may change after creation.
type ReviewPatch struct {
	Rating  *int
	Comment *string
}

// IsEmpty reports whether the patch changes nothing.
func (p ReviewPatch) IsEmpty() bool {
	return p.Rating == nil && p.Comment == nil
}

// Validate checks every provided field.
func (p ReviewPatch) Validate() error {
	if p.Rating != nil {
		if err := validateRating(*p.Rating); err != nil {
			return err
		}
	}
	if p.Comment != nil {
		if err := validateText("comment", *p.Comment, 0); err != nil {
			return err
		}
	}
	return nil
}

// Apply copies the provided fields onto r.
func (p ReviewPatch) Apply(r *Review) {
	if p.Rating != nil {
		r.Rating = *p.Rating
	}
	if p.Comment != nil {
		r.Comment = *p.Comment
	}
}
