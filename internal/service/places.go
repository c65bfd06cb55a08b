package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/phrazzld/hbnb-api/internal/domain"
	"github.com/phrazzld/hbnb-api/internal/events"
)

// CreatePlaceInput holds the fields accepted when listing a place. OwnerID
// and AmenityIDs are identifiers as received from the client; any that do not
// resolve fail the whole operation.
type CreatePlaceInput struct {
	Title       string
	Description string
	Price       float64
	Latitude    float64
	Longitude   float64
	OwnerID     string
	AmenityIDs  []string
}

// UpdatePlaceInput is a partial place update. A non-nil OwnerID moves the
// place to another user; a non-nil AmenityIDs replaces the amenity list
// wholesale.
type UpdatePlaceInput struct {
	domain.PlacePatch
	OwnerID    *string
	AmenityIDs *[]string
}

// IsEmpty reports whether the update changes nothing.
func (in UpdatePlaceInput) IsEmpty() bool {
	return in.PlacePatch.IsEmpty() && in.OwnerID == nil && in.AmenityIDs == nil
}

// PlaceDetails is a place together with the entities it references and its
// average rating, computed when the details are built.
type PlaceDetails struct {
	Place     *domain.Place
	Owner     *domain.User // nil when the owner has been deleted
	Amenities []*domain.Amenity
	Reviews   []*domain.Review

	AverageRating float64
}

// CreatePlace lists a new place. The owner and every amenity must exist.
// The place ID is recorded on the owner and on each amenity.
func (f *Facade) CreatePlace(ctx context.Context, in CreatePlaceInput) (*domain.Place, error) {
	f.mu.Lock()

	ownerID, err := f.resolveOwner(in.OwnerID)
	if err != nil {
		f.mu.Unlock()
		return nil, err
	}

	place, err := domain.NewPlace(domain.PlaceParams{
		Title:       in.Title,
		Description: in.Description,
		Price:       in.Price,
		Latitude:    in.Latitude,
		Longitude:   in.Longitude,
		OwnerID:     ownerID,
	})
	if err != nil {
		f.mu.Unlock()
		return nil, err
	}

	amenityIDs, err := f.resolveAmenities(in.AmenityIDs)
	if err != nil {
		f.mu.Unlock()
		return nil, err
	}
	place.AmenityIDs = amenityIDs

	// Every precondition holds; commit.
	f.places.Add(place)
	f.modifyUser(ownerID, func(u *domain.User) { u.AddPlace(place.ID) })
	for _, amenityID := range amenityIDs {
		f.modifyAmenity(amenityID, func(a *domain.Amenity) { a.AddPlace(place.ID) })
	}
	created := place.Clone()
	f.mu.Unlock()

	f.logger.Info("place created",
		"place_id", created.ID,
		"owner_id", ownerID,
		"amenity_count", len(amenityIDs))
	f.emit(ctx, events.PlaceCreated, events.EntityPayload{ID: created.ID})

	return created, nil
}

// GetPlace returns the place with the given ID.
func (f *Facade) GetPlace(ctx context.Context, id uuid.UUID) (*domain.Place, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	place, err := f.places.Get(id)
	if err != nil {
		return nil, err
	}
	return place.Clone(), nil
}

// GetAllPlaces returns every place in creation order.
func (f *Facade) GetAllPlaces(ctx context.Context) []*domain.Place {
	f.mu.RLock()
	defer f.mu.RUnlock()

	return cloneAll(f.places.GetAll(), (*domain.Place).Clone)
}

// GetPlaceDetails returns the place with its owner, amenities, reviews and
// average rating.
func (f *Facade) GetPlaceDetails(ctx context.Context, id uuid.UUID) (*PlaceDetails, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	place, err := f.places.Get(id)
	if err != nil {
		return nil, err
	}
	return f.placeDetails(place), nil
}

// GetAllPlaceDetails returns the details of every place in creation order.
func (f *Facade) GetAllPlaceDetails(ctx context.Context) []*PlaceDetails {
	f.mu.RLock()
	defer f.mu.RUnlock()

	places := f.places.GetAll()
	out := make([]*PlaceDetails, len(places))
	for i, place := range places {
		out[i] = f.placeDetails(place)
	}
	return out
}

// UpdatePlace applies a partial update. Scalar fields are revalidated with
// the creation rules, a new owner must exist, and a new amenity list must
// resolve completely. Cached ID lists on users and amenities follow the change.
func (f *Facade) UpdatePlace(ctx context.Context, id uuid.UUID, in UpdatePlaceInput) (*domain.Place, error) {
	if err := in.PlacePatch.Validate(); err != nil {
		return nil, err
	}

	f.mu.Lock()

	stored, err := f.places.Get(id)
	if err != nil {
		f.mu.Unlock()
		return nil, err
	}
	before := stored.Clone()

	newOwner := before.OwnerID
	if in.OwnerID != nil {
		if newOwner, err = f.resolveOwner(*in.OwnerID); err != nil {
			f.mu.Unlock()
			return nil, err
		}
	}

	var newAmenities []uuid.UUID
	if in.AmenityIDs != nil {
		if newAmenities, err = f.resolveAmenities(*in.AmenityIDs); err != nil {
			f.mu.Unlock()
			return nil, err
		}
	}

	// Every precondition holds; commit.
	place, err := f.places.Modify(id, func(p *domain.Place) {
		in.PlacePatch.Apply(p)
		p.OwnerID = newOwner
		if in.AmenityIDs != nil {
			p.AmenityIDs = newAmenities
		}
	})
	if err != nil {
		f.mu.Unlock()
		return nil, err
	}

	if newOwner != before.OwnerID {
		f.modifyUser(before.OwnerID, func(u *domain.User) { u.RemovePlace(id) })
		f.modifyUser(newOwner, func(u *domain.User) { u.AddPlace(id) })
	}
	if in.AmenityIDs != nil {
		for _, amenityID := range before.AmenityIDs {
			f.modifyAmenity(amenityID, func(a *domain.Amenity) { a.RemovePlace(id) })
		}
		for _, amenityID := range newAmenities {
			f.modifyAmenity(amenityID, func(a *domain.Amenity) { a.AddPlace(id) })
		}
	}
	updated := place.Clone()
	f.mu.Unlock()

	f.logger.Debug("place updated", "place_id", id)
	f.emit(ctx, events.PlaceUpdated, events.EntityPayload{ID: id})

	return updated, nil
}

// DeletePlace removes the place and every review of it. Review IDs are
// stripped from their authors, and the place ID from its owner and amenities.
func (f *Facade) DeletePlace(ctx context.Context, id uuid.UUID) error {
	f.mu.Lock()

	place, err := f.places.Get(id)
	if err != nil {
		f.mu.Unlock()
		return err
	}

	reviews := f.reviews.Filter(func(r *domain.Review) bool { return r.PlaceID == id })
	reviewIDs := make([]uuid.UUID, 0, len(reviews))
	for _, review := range reviews {
		reviewID := review.ID
		if err := f.reviews.Delete(reviewID); err != nil {
			f.mu.Unlock()
			return err
		}
		f.modifyUser(review.UserID, func(u *domain.User) { u.RemoveReview(reviewID) })
		reviewIDs = append(reviewIDs, reviewID)
	}

	f.modifyUser(place.OwnerID, func(u *domain.User) { u.RemovePlace(id) })
	for _, amenityID := range place.AmenityIDs {
		f.modifyAmenity(amenityID, func(a *domain.Amenity) { a.RemovePlace(id) })
	}
	ownerID := place.OwnerID

	err = f.places.Delete(id)
	f.mu.Unlock()
	if err != nil {
		return err
	}

	f.logger.Info("place deleted",
		"place_id", id,
		"review_count", len(reviewIDs))
	f.emit(ctx, events.PlaceDeleted, events.PlaceDeletedPayload{
		ID:        id,
		OwnerID:   ownerID,
		ReviewIDs: reviewIDs,
	})

	return nil
}

// AddAmenityToPlace links an amenity to a place in both directions. Linking
// an already linked pair changes nothing.
func (f *Facade) AddAmenityToPlace(ctx context.Context, placeID, amenityID uuid.UUID) (*domain.Place, error) {
	f.mu.Lock()

	place, err := f.places.Get(placeID)
	if err != nil {
		f.mu.Unlock()
		return nil, err
	}
	amenity, err := f.amenities.Get(amenityID)
	if err != nil {
		f.mu.Unlock()
		return nil, err
	}

	linked := containsID(place.AmenityIDs, amenityID) && containsID(amenity.PlaceIDs, placeID)
	if !linked {
		place, _ = f.places.Modify(placeID, func(p *domain.Place) { p.AddAmenity(amenityID) })
		f.modifyAmenity(amenityID, func(a *domain.Amenity) { a.AddPlace(placeID) })
	}
	out := place.Clone()
	f.mu.Unlock()

	if !linked {
		f.emit(ctx, events.PlaceAmenityLinked, events.AmenityLinkPayload{PlaceID: placeID, AmenityID: amenityID})
	}

	return out, nil
}

// GetPlaceAmenities returns the amenities linked to a place, skipping any
// that have since been deleted.
func (f *Facade) GetPlaceAmenities(ctx context.Context, placeID uuid.UUID) ([]*domain.Amenity, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	place, err := f.places.Get(placeID)
	if err != nil {
		return nil, err
	}
	return f.placeAmenities(place), nil
}

// GetPlaceReviews returns the reviews of a place in creation order.
func (f *Facade) GetPlaceReviews(ctx context.Context, placeID uuid.UUID) ([]*domain.Review, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	if !f.places.Exists(placeID) {
		return nil, domain.ErrPlaceNotFound
	}
	return f.placeReviews(placeID), nil
}

// The helpers below expect f.mu to be held.

func (f *Facade) resolveOwner(raw string) (uuid.UUID, error) {
	id, ok := domain.ParseID(raw)
	if !ok || !f.users.Exists(id) {
		return uuid.Nil, domain.ErrOwnerNotFound
	}
	return id, nil
}

// resolveAmenities parses, deduplicates and checks every amenity reference,
// keeping the order of first occurrence.
func (f *Facade) resolveAmenities(raw []string) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, 0, len(raw))
	for _, r := range raw {
		id, ok := domain.ParseID(r)
		if !ok || !f.amenities.Exists(id) {
			return nil, domain.ErrAmenityNotFound
		}
		ids = append(ids, id)
	}
	return domain.UniqueIDs(ids), nil
}

func (f *Facade) placeDetails(place *domain.Place) *PlaceDetails {
	details := &PlaceDetails{
		Place:     place.Clone(),
		Amenities: f.placeAmenities(place),
		Reviews:   f.placeReviews(place.ID),
	}
	if owner, err := f.users.Get(place.OwnerID); err == nil {
		details.Owner = owner.Clone()
	}

	ratings := make([]int, len(details.Reviews))
	for i, review := range details.Reviews {
		ratings[i] = review.Rating
	}
	details.AverageRating = domain.AverageRating(ratings)

	return details
}

func (f *Facade) placeAmenities(place *domain.Place) []*domain.Amenity {
	out := make([]*domain.Amenity, 0, len(place.AmenityIDs))
	for _, id := range place.AmenityIDs {
		if amenity, err := f.amenities.Get(id); err == nil {
			out = append(out, amenity.Clone())
		}
	}
	return out
}

func (f *Facade) placeReviews(placeID uuid.UUID) []*domain.Review {
	reviews := f.reviews.Filter(func(r *domain.Review) bool { return r.PlaceID == placeID })
	return cloneAll(reviews, (*domain.Review).Clone)
}

// modifyUser updates a cached list on a user. Users may have been deleted
// without cascading, so a missing user is skipped.
func (f *Facade) modifyUser(id uuid.UUID, fn func(*domain.User)) {
	_, _ = f.users.Modify(id, fn)
}

// modifyAmenity is modifyUser for amenities.
func (f *Facade) modifyAmenity(id uuid.UUID, fn func(*domain.Amenity)) {
	_, _ = f.amenities.Modify(id, fn)
}

func containsID(ids []uuid.UUID, id uuid.UUID) bool {
	for _, existing := range ids {
		if existing == id {
			return true
		}
	}
	return false
}
