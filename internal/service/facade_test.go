package service_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/phrazzld/hbnb-api/internal/domain"
	"github.com/phrazzld/hbnb-api/internal/events"
	"github.com/phrazzld/hbnb-api/internal/service"
	"github.com/phrazzld/hbnb-api/internal/service/auth"
	"github.com/phrazzld/hbnb-api/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// MockEventEmitter mocks the events.EventEmitter interface
type MockEventEmitter struct {
	mock.Mock
}

func (m *MockEventEmitter) EmitEvent(ctx context.Context, event *events.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func eventOfType(eventType string) any {
	return mock.MatchedBy(func(e *events.Event) bool { return e.Type == eventType })
}

func newTestFacade(t *testing.T, opts ...service.Option) *service.Facade {
	t.Helper()
	return service.NewFacade(
		service.NewInMemoryRepositories(),
		auth.NewBcryptHasher(bcrypt.MinCost),
		testutils.DiscardLogger(),
		opts...,
	)
}

func createUser(t *testing.T, f *service.Facade, email string) *domain.User {
	t.Helper()
	user, err := f.CreateUser(context.Background(), service.CreateUserInput{
		Email:     email,
		FirstName: "A",
		LastName:  "B",
	})
	require.NoError(t, err)
	return user
}

func createAmenity(t *testing.T, f *service.Facade, name string) *domain.Amenity {
	t.Helper()
	amenity, err := f.CreateAmenity(context.Background(), name, "")
	require.NoError(t, err)
	return amenity
}

func createPlace(t *testing.T, f *service.Facade, ownerID uuid.UUID, amenityIDs ...uuid.UUID) *domain.Place {
	t.Helper()
	refs := make([]string, len(amenityIDs))
	for i, id := range amenityIDs {
		refs[i] = id.String()
	}
	place, err := f.CreatePlace(context.Background(), service.CreatePlaceInput{
		Title:      "Loft",
		Price:      100,
		Latitude:   10,
		Longitude:  20,
		OwnerID:    ownerID.String(),
		AmenityIDs: refs,
	})
	require.NoError(t, err)
	return place
}

func createReview(t *testing.T, f *service.Facade, rating int, userID, placeID uuid.UUID) *domain.Review {
	t.Helper()
	review, err := f.CreateReview(context.Background(), service.CreateReviewInput{
		Rating:  rating,
		Comment: "Nice",
		UserID:  userID.String(),
		PlaceID: placeID.String(),
	})
	require.NoError(t, err)
	return review
}

func TestNewFacade_PanicsWithoutHasher(t *testing.T) {
	assert.Panics(t, func() {
		service.NewFacade(service.NewInMemoryRepositories(), nil, nil)
	})
}

// The concrete scenario from the API contract, driven through the facade.
func TestFacade_ReviewedPlaceLifecycle(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newTestFacade(t)

	user := createUser(t, f, "a@b.com")
	assert.NotEqual(t, uuid.Nil, user.ID)

	place := createPlace(t, f, user.ID)
	review := createReview(t, f, 5, user.ID, place.ID)

	details, err := f.GetPlaceDetails(ctx, place.ID)
	require.NoError(t, err)
	assert.Equal(t, 5.0, details.AverageRating)
	require.NotNil(t, details.Owner)
	assert.Equal(t, user.ID, details.Owner.ID)
	require.Len(t, details.Reviews, 1)

	require.NoError(t, f.DeletePlace(ctx, place.ID))

	_, err = f.GetReview(ctx, review.ID)
	assert.ErrorIs(t, err, domain.ErrReviewNotFound)
	_, err = f.GetPlace(ctx, place.ID)
	assert.ErrorIs(t, err, domain.ErrPlaceNotFound)
}

func TestFacade_ReturnsCopies(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newTestFacade(t)
	user := createUser(t, f, "a@b.com")

	user.Email = "mutated@b.com"
	user.PlaceIDs = append(user.PlaceIDs, uuid.New())

	stored, err := f.GetUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "a@b.com", stored.Email)
	assert.Empty(t, stored.PlaceIDs)
}

func TestFacade_EmitsEventsAfterCommit(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	emitter := new(MockEventEmitter)
	f := newTestFacade(t, service.WithEmitter(emitter))

	emitter.On("EmitEvent", mock.Anything, eventOfType(events.UserCreated)).Return(nil).Once()
	emitter.On("EmitEvent", mock.Anything, eventOfType(events.PlaceCreated)).Return(nil).Once()
	emitter.On("EmitEvent", mock.Anything, eventOfType(events.ReviewCreated)).Return(nil).Once()
	emitter.On("EmitEvent", mock.Anything, mock.MatchedBy(func(e *events.Event) bool {
		if e.Type != events.PlaceDeleted {
			return false
		}
		var payload events.PlaceDeletedPayload
		return e.UnmarshalPayload(&payload) == nil && len(payload.ReviewIDs) == 1
	})).Return(nil).Once()

	user := createUser(t, f, "a@b.com")
	place := createPlace(t, f, user.ID)
	createReview(t, f, 4, user.ID, place.ID)
	require.NoError(t, f.DeletePlace(ctx, place.ID))

	emitter.AssertExpectations(t)
}

func TestFacade_NoEventOnFailure(t *testing.T) {
	t.Parallel()
	emitter := new(MockEventEmitter)
	f := newTestFacade(t, service.WithEmitter(emitter))

	_, err := f.CreateUser(context.Background(), service.CreateUserInput{Email: "broken"})
	require.Error(t, err)

	emitter.AssertNotCalled(t, "EmitEvent", mock.Anything, mock.Anything)
}

func TestFacade_EmitFailureDoesNotFailOperation(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	emitter := new(MockEventEmitter)
	emitter.On("EmitEvent", mock.Anything, mock.Anything).Return(errors.New("handler down"))
	logger, logs := testutils.NewTestLogger()
	f := service.NewFacade(
		service.NewInMemoryRepositories(),
		auth.NewBcryptHasher(bcrypt.MinCost),
		logger,
		service.WithEmitter(emitter),
	)

	user := createUser(t, f, "a@b.com")

	stored, err := f.GetUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.ID, stored.ID)
	emitter.AssertNumberOfCalls(t, "EmitEvent", 1)

	entry, found := logs.Find("event handler failed")
	require.True(t, found)
	assert.Equal(t, "WARN", entry["level"])
	assert.Equal(t, "facade", entry["component"])
	assert.Equal(t, events.UserCreated, entry["event_type"])
}

func TestFacade_ConcurrentEmailUniqueness(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newTestFacade(t)

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
		conflicts int
	)
	for i := 0; i < 25; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.CreateUser(ctx, service.CreateUserInput{
				Email:     "same@b.com",
				FirstName: "A",
				LastName:  "B",
			})
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				successes++
			case errors.Is(err, domain.ErrEmailExists):
				conflicts++
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, successes)
	assert.Equal(t, 24, conflicts)
	assert.Len(t, f.GetAllUsers(ctx), 1)
}

func TestFacade_ConcurrentReviewsKeepCachesInSync(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newTestFacade(t)
	owner := createUser(t, f, "owner@b.com")
	place := createPlace(t, f, owner.ID)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		user := createUser(t, f, fmt.Sprintf("guest%d@b.com", i))
		wg.Add(1)
		go func(userID uuid.UUID) {
			defer wg.Done()
			_, _ = f.CreateReview(ctx, service.CreateReviewInput{
				Rating:  3,
				Comment: "ok",
				UserID:  userID.String(),
				PlaceID: place.ID.String(),
			})
		}(user.ID)
	}
	wg.Wait()

	stored, err := f.GetPlace(ctx, place.ID)
	require.NoError(t, err)
	reviews, err := f.GetPlaceReviews(ctx, place.ID)
	require.NoError(t, err)
	assert.Len(t, reviews, 10)
	assert.Len(t, stored.ReviewIDs, 10)
}
