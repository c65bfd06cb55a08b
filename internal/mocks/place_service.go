package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/phrazzld/hbnb-api/internal/domain"
	"github.com/phrazzld/hbnb-api/internal/service"
)

// MockPlaceService implements api.PlaceService for testing
type MockPlaceService struct {
	// Custom behavior functions
	CreatePlaceFn        func(ctx context.Context, in service.CreatePlaceInput) (*domain.Place, error)
	GetPlaceDetailsFn    func(ctx context.Context, id uuid.UUID) (*service.PlaceDetails, error)
	GetAllPlaceDetailsFn func(ctx context.Context) []*service.PlaceDetails
	UpdatePlaceFn        func(ctx context.Context, id uuid.UUID, in service.UpdatePlaceInput) (*domain.Place, error)
	DeletePlaceFn        func(ctx context.Context, id uuid.UUID) error
	AddAmenityToPlaceFn  func(ctx context.Context, placeID, amenityID uuid.UUID) (*domain.Place, error)
	GetPlaceAmenitiesFn  func(ctx context.Context, placeID uuid.UUID) ([]*domain.Amenity, error)
	GetPlaceReviewsFn    func(ctx context.Context, placeID uuid.UUID) ([]*domain.Review, error)

	// Default return values
	Place        *domain.Place
	Details      *service.PlaceDetails
	DefaultError error
}

// CreatePlace implements the PlaceService.CreatePlace method
func (m *MockPlaceService) CreatePlace(ctx context.Context, in service.CreatePlaceInput) (*domain.Place, error) {
	if m.CreatePlaceFn != nil {
		return m.CreatePlaceFn(ctx, in)
	}
	return m.Place, m.DefaultError
}

// GetPlaceDetails implements the PlaceService.GetPlaceDetails method
func (m *MockPlaceService) GetPlaceDetails(ctx context.Context, id uuid.UUID) (*service.PlaceDetails, error) {
	if m.GetPlaceDetailsFn != nil {
		return m.GetPlaceDetailsFn(ctx, id)
	}
	return m.Details, m.DefaultError
}

// GetAllPlaceDetails implements the PlaceService.GetAllPlaceDetails method
func (m *MockPlaceService) GetAllPlaceDetails(ctx context.Context) []*service.PlaceDetails {
	if m.GetAllPlaceDetailsFn != nil {
		return m.GetAllPlaceDetailsFn(ctx)
	}
	if m.Details == nil {
		return nil
	}
	return []*service.PlaceDetails{m.Details}
}

// UpdatePlace implements the PlaceService.UpdatePlace method
func (m *MockPlaceService) UpdatePlace(ctx context.Context, id uuid.UUID, in service.UpdatePlaceInput) (*domain.Place, error) {
	if m.UpdatePlaceFn != nil {
		return m.UpdatePlaceFn(ctx, id, in)
	}
	return m.Place, m.DefaultError
}

// DeletePlace implements the PlaceService.DeletePlace method
func (m *MockPlaceService) DeletePlace(ctx context.Context, id uuid.UUID) error {
	if m.DeletePlaceFn != nil {
		return m.DeletePlaceFn(ctx, id)
	}
	return m.DefaultError
}

// AddAmenityToPlace implements the PlaceService.AddAmenityToPlace method
func (m *MockPlaceService) AddAmenityToPlace(ctx context.Context, placeID, amenityID uuid.UUID) (*domain.Place, error) {
	if m.AddAmenityToPlaceFn != nil {
		return m.AddAmenityToPlaceFn(ctx, placeID, amenityID)
	}
	return m.Place, m.DefaultError
}

// GetPlaceAmenities implements the PlaceService.GetPlaceAmenities method
func (m *MockPlaceService) GetPlaceAmenities(ctx context.Context, placeID uuid.UUID) ([]*domain.Amenity, error) {
	if m.GetPlaceAmenitiesFn != nil {
		return m.GetPlaceAmenitiesFn(ctx, placeID)
	}
	return nil, m.DefaultError
}

// GetPlaceReviews implements the PlaceService.GetPlaceReviews method
func (m *MockPlaceService) GetPlaceReviews(ctx context.Context, placeID uuid.UUID) ([]*domain.Review, error) {
	if m.GetPlaceReviewsFn != nil {
		return m.GetPlaceReviewsFn(ctx, placeID)
	}
	return nil, m.DefaultError
}
