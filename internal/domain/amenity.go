package domain

import (
	"time"

	"github.com/google/uuid"
)

// Amenity is a feature a place can offer, such as Wi-Fi or parking.
type Amenity struct {
	ID          uuid.UUID   `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	PlaceIDs    []uuid.UUID `json:"place_ids"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// NewAmenity creates a new Amenity. Description is optional.
func NewAmenity(name, description string) (*Amenity, error) {
	ts := now()
	amenity := &Amenity{
		ID:          uuid.New(),
		Name:        name,
		Description: description,
		PlaceIDs:    []uuid.UUID{},
		CreatedAt:   ts,
		UpdatedAt:   ts,
	}

	if err := amenity.Validate(); err != nil {
		return nil, err
	}

	return amenity, nil
}

// Validate checks if the Amenity has valid data.
func (a *Amenity) Validate() error {
	return validateText("name", a.Name, MaxNameLength)
}

// AddPlace records a place offering this amenity.
func (a *Amenity) AddPlace(placeID uuid.UUID) {
	a.PlaceIDs = appendUnique(a.PlaceIDs, placeID)
}

// RemovePlace forgets a place offering this amenity.
func (a *Amenity) RemovePlace(placeID uuid.UUID) {
	a.PlaceIDs = removeID(a.PlaceIDs, placeID)
}

func (a *Amenity) GetID() uuid.UUID { return a.ID }

func (a *Amenity) Touch() { a.UpdatedAt = now() }

func (a *Amenity) Attribute(name string) (any, bool) {
	switch name {
	case "id":
		return a.ID, true
	case "name":
		return a.Name, true
	default:
		return nil, false
	}
}

func (a *Amenity) Clone() *Amenity {
	c := *a
	c.PlaceIDs = cloneIDs(a.PlaceIDs)
	return &c
}

// AmenityPatch lists the amenity fields that may change after creation.
type AmenityPatch struct {
	Name        *string
	Description *string
}

func (p AmenityPatch) IsEmpty() bool {
	return p.Name == nil && p.Description == nil
}

func (p AmenityPatch) Validate() error {
	if p.Name != nil {
		return validateText("name", *p.Name, MaxNameLength)
	}
	return nil
}

func (p AmenityPatch) Apply(a *Amenity) {
	if p.Name != nil {
		a.Name = *p.Name
	}
	if p.Description != nil {
		a.Description = *p.Description
	}
}
