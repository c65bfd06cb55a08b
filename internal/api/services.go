package api

import (
	"context"

	"github.com/google/uuid"
	"github.com/phrazzld/hbnb-api/internal/domain"
	"github.com/phrazzld/hbnb-api/internal/service"
)

// UserService is the part of the facade the user handler depends on.
type UserService interface {
	CreateUser(ctx context.Context, in service.CreateUserInput) (*domain.User, error)
	GetUser(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetAllUsers(ctx context.Context) []*domain.User
	UpdateUser(ctx context.Context, id uuid.UUID, patch domain.UserPatch) (*domain.User, error)
	DeleteUser(ctx context.Context, id uuid.UUID) error
}

// AmenityService is the part of the facade the amenity handler depends on.
type AmenityService interface {
	CreateAmenity(ctx context.Context, name, description string) (*domain.Amenity, error)
	GetAmenity(ctx context.Context, id uuid.UUID) (*domain.Amenity, error)
	GetAllAmenities(ctx context.Context) []*domain.Amenity
	UpdateAmenity(ctx context.Context, id uuid.UUID, patch domain.AmenityPatch) (*domain.Amenity, error)
	DeleteAmenity(ctx context.Context, id uuid.UUID) error
}

// PlaceService is the part of the facade the place handler depends on.
type PlaceService interface {
	CreatePlace(ctx context.Context, in service.CreatePlaceInput) (*domain.Place, error)
	GetPlaceDetails(ctx context.Context, id uuid.UUID) (*service.PlaceDetails, error)
	GetAllPlaceDetails(ctx context.Context) []*service.PlaceDetails
	UpdatePlace(ctx context.Context, id uuid.UUID, in service.UpdatePlaceInput) (*domain.Place, error)
	DeletePlace(ctx context.Context, id uuid.UUID) error
	AddAmenityToPlace(ctx context.Context, placeID, amenityID uuid.UUID) (*domain.Place, error)
	GetPlaceAmenities(ctx context.Context, placeID uuid.UUID) ([]*domain.Amenity, error)
	GetPlaceReviews(ctx context.Context, placeID uuid.UUID) ([]*domain.Review, error)
}

// ReviewService is the part of the facade the review handler depends on.
type ReviewService interface {
	CreateReview(ctx context.Context, in service.CreateReviewInput) (*domain.Review, error)
	GetReview(ctx context.Context, id uuid.UUID) (*domain.Review, error)
	GetAllReviews(ctx context.Context) []*domain.Review
	UpdateReview(ctx context.Context, id uuid.UUID, patch domain.ReviewPatch) (*domain.Review, error)
	DeleteReview(ctx context.Context, id uuid.UUID) error
}

var (
	_ UserService    = (*service.Facade)(nil)
	_ AmenityService = (*service.Facade)(nil)
	_ PlaceService   = (*service.Facade)(nil)
	_ ReviewService  = (*service.Facade)(nil)
)
