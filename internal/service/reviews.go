package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/phrazzld/hbnb-api/internal/domain"
	"github.com/phrazzld/hbnb-api/internal/events"
)

// CreateReviewInput holds the fields accepted when reviewing a place. UserID
// and PlaceID are identifiers as received from the client.
type CreateReviewInput struct {
	Rating  int
	Comment string
	UserID  string
	PlaceID string
}

// CreateReview records a review. The user and place must exist, and unless
// the facade was built with WithOneReviewPerUserPlace(false) a user may
// review each place once. The review ID is recorded on the user and the place.
func (f *Facade) CreateReview(ctx context.Context, in CreateReviewInput) (*domain.Review, error) {
	f.mu.Lock()

	userID, ok := domain.ParseID(in.UserID)
	if !ok || !f.users.Exists(userID) {
		f.mu.Unlock()
		return nil, domain.ErrUserNotFound
	}
	placeID, ok := domain.ParseID(in.PlaceID)
	if !ok || !f.places.Exists(placeID) {
		f.mu.Unlock()
		return nil, domain.ErrPlaceNotFound
	}

	review, err := domain.NewReview(in.Rating, in.Comment, userID, placeID)
	if err != nil {
		f.mu.Unlock()
		return nil, err
	}

	if f.onePerUserPlace {
		_, err := f.reviews.FindFirst(func(r *domain.Review) bool {
			return r.UserID == userID && r.PlaceID == placeID
		})
		if err == nil {
			f.mu.Unlock()
			return nil, domain.ErrDuplicateReview
		}
	}

	// Every precondition holds; commit.
	f.reviews.Add(review)
	_, _ = f.places.Modify(placeID, func(p *domain.Place) { p.AddReview(review.ID) })
	f.modifyUser(userID, func(u *domain.User) { u.AddReview(review.ID) })
	created := review.Clone()
	f.mu.Unlock()

	f.logger.Info("review created",
		"review_id", created.ID,
		"place_id", placeID,
		"user_id", userID)
	f.emit(ctx, events.ReviewCreated, events.EntityPayload{ID: created.ID})

	return created, nil
}

// GetReview returns the review with the given ID.
func (f *Facade) GetReview(ctx context.Context, id uuid.UUID) (*domain.Review, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	review, err := f.reviews.Get(id)
	if err != nil {
		return nil, err
	}
	return review.Clone(), nil
}

// GetAllReviews returns every review in creation order.
func (f *Facade) GetAllReviews(ctx context.Context) []*domain.Review {
	f.mu.RLock()
	defer f.mu.RUnlock()

	return cloneAll(f.reviews.GetAll(), (*domain.Review).Clone)
}

// UpdateReview changes a review's rating or comment. The author and the
// reviewed place never change.
func (f *Facade) UpdateReview(ctx context.Context, id uuid.UUID, patch domain.ReviewPatch) (*domain.Review, error) {
	if err := patch.Validate(); err != nil {
		return nil, err
	}

	f.mu.Lock()
	review, err := f.reviews.Update(id, patch)
	if err != nil {
		f.mu.Unlock()
		return nil, err
	}
	updated := review.Clone()
	f.mu.Unlock()

	f.emit(ctx, events.ReviewUpdated, events.EntityPayload{ID: id})

	return updated, nil
}

// DeleteReview removes the review and strips its ID from the place and the
// author. Deleting it again reports domain.ErrReviewNotFound.
func (f *Facade) DeleteReview(ctx context.Context, id uuid.UUID) error {
	f.mu.Lock()

	review, err := f.reviews.Get(id)
	if err != nil {
		f.mu.Unlock()
		return err
	}
	if err := f.reviews.Delete(id); err != nil {
		f.mu.Unlock()
		return err
	}
	_, _ = f.places.Modify(review.PlaceID, func(p *domain.Place) { p.RemoveReview(id) })
	f.modifyUser(review.UserID, func(u *domain.User) { u.RemoveReview(id) })
	f.mu.Unlock()

	f.logger.Info("review deleted", "review_id", id)
	f.emit(ctx, events.ReviewDeleted, events.EntityPayload{ID: id})

	return nil
}
