package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/phrazzld/hbnb-api/internal/domain"
	"github.com/phrazzld/hbnb-api/internal/events"
)

// CreateAmenity creates an amenity. Description may be empty.
func (f *Facade) CreateAmenity(ctx context.Context, name, description string) (*domain.Amenity, error) {
	amenity, err := domain.NewAmenity(name, description)
	if err != nil {
		return nil, err
	}

	f.mu.Lock()
	created := f.amenities.Add(amenity).Clone()
	f.mu.Unlock()

	f.logger.Info("amenity created", "amenity_id", created.ID)
	f.emit(ctx, events.AmenityCreated, events.EntityPayload{ID: created.ID})

	return created, nil
}

// GetAmenity returns the amenity with the given ID.
func (f *Facade) GetAmenity(ctx context.Context, id uuid.UUID) (*domain.Amenity, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	amenity, err := f.amenities.Get(id)
	if err != nil {
		return nil, err
	}
	return amenity.Clone(), nil
}

// GetAllAmenities returns every amenity in creation order.
func (f *Facade) GetAllAmenities(ctx context.Context) []*domain.Amenity {
	f.mu.RLock()
	defer f.mu.RUnlock()

	return cloneAll(f.amenities.GetAll(), (*domain.Amenity).Clone)
}

// UpdateAmenity applies patch to the amenity.
func (f *Facade) UpdateAmenity(ctx context.Context, id uuid.UUID, patch domain.AmenityPatch) (*domain.Amenity, error) {
	if err := patch.Validate(); err != nil {
		return nil, err
	}

	f.mu.Lock()
	amenity, err := f.amenities.Update(id, patch)
	if err != nil {
		f.mu.Unlock()
		return nil, err
	}
	updated := amenity.Clone()
	f.mu.Unlock()

	f.emit(ctx, events.AmenityUpdated, events.EntityPayload{ID: id})

	return updated, nil
}

// DeleteAmenity removes the amenity. Places keep their reference to it;
// dangling references are skipped when places are read.
func (f *Facade) DeleteAmenity(ctx context.Context, id uuid.UUID) error {
	f.mu.Lock()
	err := f.amenities.Delete(id)
	f.mu.Unlock()
	if err != nil {
		return err
	}

	f.logger.Info("amenity deleted", "amenity_id", id)
	f.emit(ctx, events.AmenityDeleted, events.EntityPayload{ID: id})

	return nil
}
