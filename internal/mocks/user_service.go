package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/phrazzld/hbnb-api/internal/domain"
	"github.com/phrazzld/hbnb-api/internal/service"
)

// MockUserService implements api.UserService for testing
type MockUserService struct {
	// Custom behavior functions
	CreateUserFn  func(ctx context.Context, in service.CreateUserInput) (*domain.User, error)
	GetUserFn     func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetAllUsersFn func(ctx context.Context) []*domain.User
	UpdateUserFn  func(ctx context.Context, id uuid.UUID, patch domain.UserPatch) (*domain.User, error)
	DeleteUserFn  func(ctx context.Context, id uuid.UUID) error

	// Default return values
	User         *domain.User
	Users        []*domain.User
	DefaultError error
}

// CreateUser implements the UserService.CreateUser method
func (m *MockUserService) CreateUser(ctx context.Context, in service.CreateUserInput) (*domain.User, error) {
	if m.CreateUserFn != nil {
		return m.CreateUserFn(ctx, in)
	}
	return m.User, m.DefaultError
}

// GetUser implements the UserService.GetUser method
func (m *MockUserService) GetUser(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.GetUserFn != nil {
		return m.GetUserFn(ctx, id)
	}
	return m.User, m.DefaultError
}

// GetAllUsers implements the UserService.GetAllUsers method
func (m *MockUserService) GetAllUsers(ctx context.Context) []*domain.User {
	if m.GetAllUsersFn != nil {
		return m.GetAllUsersFn(ctx)
	}
	return m.Users
}

// UpdateUser implements the UserService.UpdateUser method
func (m *MockUserService) UpdateUser(ctx context.Context, id uuid.UUID, patch domain.UserPatch) (*domain.User, error) {
	if m.UpdateUserFn != nil {
		return m.UpdateUserFn(ctx, id, patch)
	}
	return m.User, m.DefaultError
}

// DeleteUser implements the UserService.DeleteUser method
func (m *MockUserService) DeleteUser(ctx context.Context, id uuid.UUID) error {
	if m.DeleteUserFn != nil {
		return m.DeleteUserFn(ctx, id)
	}
	return m.DefaultError
}
