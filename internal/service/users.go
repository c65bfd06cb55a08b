package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/phrazzld/hbnb-api/internal/domain"
	"github.com/phrazzld/hbnb-api/internal/events"
)

// CreateUserInput holds the fields accepted when registering a user.
type CreateUserInput struct {
	Email     string
	FirstName string
	LastName  string
	IsAdmin   bool

	// Password is optional. When set it is hashed before storage.
	Password *string
}

// CreateUser registers a new user. It fails with a validation error for
// blank names or a malformed email and with domain.ErrEmailExists when the
// email is already registered.
func (f *Facade) CreateUser(ctx context.Context, in CreateUserInput) (*domain.User, error) {
	user, err := domain.NewUser(in.Email, in.FirstName, in.LastName)
	if err != nil {
		return nil, err
	}
	user.IsAdmin = in.IsAdmin

	if in.Password != nil {
		if err := domain.ValidatePassword(*in.Password); err != nil {
			return nil, err
		}
		hash, err := f.hasher.Hash(*in.Password)
		if err != nil {
			return nil, err
		}
		user.HashedPassword = hash
	}

	f.mu.Lock()
	if f.emailTaken(user.Email, uuid.Nil) {
		f.mu.Unlock()
		return nil, domain.ErrEmailExists
	}
	created := f.users.Add(user).Clone()
	f.mu.Unlock()

	f.logger.Info("user created", "user_id", created.ID)
	f.emit(ctx, events.UserCreated, events.EntityPayload{ID: created.ID})

	return created, nil
}

// GetUser returns the user with the given ID.
func (f *Facade) GetUser(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	user, err := f.users.Get(id)
	if err != nil {
		return nil, err
	}
	return user.Clone(), nil
}

// GetUserByEmail returns the user registered with email. The match is exact.
func (f *Facade) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	user, err := f.users.GetByAttribute("email", email)
	if err != nil {
		return nil, err
	}
	return user.Clone(), nil
}

// GetAllUsers returns every user in creation order.
func (f *Facade) GetAllUsers(ctx context.Context) []*domain.User {
	f.mu.RLock()
	defer f.mu.RUnlock()

	return cloneAll(f.users.GetAll(), (*domain.User).Clone)
}

// UpdateUser applies patch to the user. A new email is checked against every
// other user; a new password replaces the stored hash.
func (f *Facade) UpdateUser(ctx context.Context, id uuid.UUID, patch domain.UserPatch) (*domain.User, error) {
	if err := patch.Validate(); err != nil {
		return nil, err
	}

	// Never trust a caller-provided hash.
	patch.HashedPassword = nil
	if patch.Password != nil {
		hash, err := f.hasher.Hash(*patch.Password)
		if err != nil {
			return nil, err
		}
		patch.HashedPassword = &hash
		patch.Password = nil
	}

	f.mu.Lock()
	if !f.users.Exists(id) {
		f.mu.Unlock()
		return nil, domain.ErrUserNotFound
	}
	if patch.Email != nil && f.emailTaken(*patch.Email, id) {
		f.mu.Unlock()
		return nil, domain.ErrEmailExists
	}
	user, err := f.users.Update(id, patch)
	if err != nil {
		f.mu.Unlock()
		return nil, err
	}
	updated := user.Clone()
	f.mu.Unlock()

	f.logger.Debug("user updated", "user_id", id)
	f.emit(ctx, events.UserUpdated, events.EntityPayload{ID: id})

	return updated, nil
}

// DeleteUser removes the user. Places and reviews that reference the user
// are left in place.
func (f *Facade) DeleteUser(ctx context.Context, id uuid.UUID) error {
	f.mu.Lock()
	err := f.users.Delete(id)
	f.mu.Unlock()
	if err != nil {
		return err
	}

	f.logger.Info("user deleted", "user_id", id)
	f.emit(ctx, events.UserDeleted, events.EntityPayload{ID: id})

	return nil
}

// emailTaken reports whether any user other than except holds email.
// Callers must hold f.mu.
func (f *Facade) emailTaken(email string, except uuid.UUID) bool {
	_, err := f.users.FindFirst(func(u *domain.User) bool {
		return u.Email == email && u.ID != except
	})
	return err == nil
}

func cloneAll[T any](items []T, clone func(T) T) []T {
	out := make([]T, len(items))
	for i, item := range items {
		out[i] = clone(item)
	}
	return out
}
