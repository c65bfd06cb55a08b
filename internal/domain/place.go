package domain

import (
	"time"

	"github.com/google/uuid"
)

// Place is a rental listing owned by a user.
type Place struct {
	ID          uuid.UUID   `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Price       float64     `json:"price"`
	Latitude    float64     `json:"latitude"`
	Longitude   float64     `json:"longitude"`
	OwnerID     uuid.UUID   `json:"owner_id"`
	AmenityIDs  []uuid.UUID `json:"amenities"`
	ReviewIDs   []uuid.UUID `json:"reviews"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// PlaceParams holds the fields needed to build a Place.
type PlaceParams struct {
	Title       string
	Description string
	Price       float64
	Latitude    float64
	Longitude   float64
	OwnerID     uuid.UUID
}

// NewPlace creates a new Place with a generated ID and fresh timestamps.
// Returns a *ValidationError if any field is invalid. Whether the owner
// exists is not checked here.
func NewPlace(params PlaceParams) (*Place, error) {
	ts := now()
	place := &Place{
		ID:          uuid.New(),
		Title:       params.Title,
		Description: params.Description,
		Price:       params.Price,
		Latitude:    params.Latitude,
		Longitude:   params.Longitude,
		OwnerID:     params.OwnerID,
		AmenityIDs:  []uuid.UUID{},
		ReviewIDs:   []uuid.UUID{},
		CreatedAt:   ts,
		UpdatedAt:   ts,
	}

	if err := place.Validate(); err != nil {
		return nil, err
	}

	return place, nil
}

// Validate checks if the Place has valid data.
func (p *Place) Validate() error {
	if err := validateText("title", p.Title, MaxTitleLength); err != nil {
		return err
	}
	if err := validatePrice(p.Price); err != nil {
		return err
	}
	if err := validateLatitude(p.Latitude); err != nil {
		return err
	}
	if err := validateLongitude(p.Longitude); err != nil {
		return err
	}
	if p.OwnerID == uuid.Nil {
		return NewValidationError("owner_id", "cannot be empty", ErrEmptyField)
	}
	return nil
}

// AddAmenity links an amenity; linking twice is a no-op.
func (p *Place) AddAmenity(amenityID uuid.UUID) {
	p.AmenityIDs = appendUnique(p.AmenityIDs, amenityID)
}

// RemoveAmenity unlinks an amenity.
func (p *Place) RemoveAmenity(amenityID uuid.UUID) {
	p.AmenityIDs = removeID(p.AmenityIDs, amenityID)
}

// AddReview records a review of this place.
func (p *Place) AddReview(reviewID uuid.UUID) {
	p.ReviewIDs = appendUnique(p.ReviewIDs, reviewID)
}

// RemoveReview forgets a review of this place.
func (p *Place) RemoveReview(reviewID uuid.UUID) {
	p.ReviewIDs = removeID(p.ReviewIDs, reviewID)
}

// GetID returns the place's identifier.
func (p *Place) GetID() uuid.UUID { return p.ID }

// Touch refreshes the update timestamp.
func (p *Place) Touch() { p.UpdatedAt = now() }

// Attribute exposes the fields that may be used for lookups.
func (p *Place) Attribute(name string) (any, bool) {
	switch name {
	case "id":
		return p.ID, true
	case "title":
		return p.Title, true
	case "owner_id":
		return p.OwnerID, true
	default:
		return nil, false
	}
}

// Clone returns a deep copy of the place.
func (p *Place) Clone() *Place {
	c := *p
	c.AmenityIDs = cloneIDs(p.AmenityIDs)
	c.ReviewIDs = cloneIDs(p.ReviewIDs)
	return &c
}

// PlacePatch lists the scalar place fields that may change after creation.
// Owner and amenity changes involve other entities and are handled by the
// service layer.
type PlacePatch struct {
	Title       *string
	Description *string
	Price       *float64
	Latitude    *float64
	Longitude   *float64
}

// IsEmpty reports whether the patch changes nothing.
func (p PlacePatch) IsEmpty() bool {
	return p.Title == nil && p.Description == nil && p.Price == nil &&
		p.Latitude == nil && p.Longitude == nil
}

// Validate checks every provided field with the same rules as NewPlace.
func (p PlacePatch) Validate() error {
	if p.Title != nil {
		if err := validateText("title", *p.Title, MaxTitleLength); err != nil {
			return err
		}
	}
	if p.Price != nil {
		if err := validatePrice(*p.Price); err != nil {
			return err
		}
	}
	if p.Latitude != nil {
		if err := validateLatitude(*p.Latitude); err != nil {
			return err
		}
	}
	if p.Longitude != nil {
		if err := validateLongitude(*p.Longitude); err != nil {
			return err
		}
	}
	return nil
}

// Apply copies the provided fields onto pl.
func (p PlacePatch) Apply(pl *Place) {
	if p.Title != nil {
		pl.Title = *p.Title
	}
	if p.Description != nil {
		pl.Description = *p.Description
	}
	if p.Price != nil {
		pl.Price = *p.Price
	}
	if p.Latitude != nil {
		pl.Latitude = *p.Latitude
	}
	if p.Longitude != nil {
		pl.Longitude = *p.Longitude
	}
}
