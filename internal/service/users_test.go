package service_test

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/phrazzld/hbnb-api/internal/domain"
	"github.com/phrazzld/hbnb-api/internal/service"
	"github.com/phrazzld/hbnb-api/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)


func TestFacade_CreateUser(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		f := newTestFacade(t)
		user, err := f.CreateUser(ctx, service.CreateUserInput{
			Email:     "a@b.com",
			FirstName: "A",
			LastName:  "B",
		})
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, user.ID)
		assert.Equal(t, "a@b.com", user.Email)
		assert.False(t, user.CreatedAt.IsZero())
		assert.Equal(t, user.CreatedAt, user.UpdatedAt)
		assert.Empty(t, user.HashedPassword)
	})

	t.Run("hashes password", func(t *testing.T) {
		f := newTestFacade(t)
		user, err := f.CreateUser(ctx, service.CreateUserInput{
			Email:     "a@b.com",
			FirstName: "A",
			LastName:  "B",
			Password:  testutils.Ptr("1234"),
		})
		require.NoError(t, err)

		assert.NotEqual(t, "1234", user.HashedPassword)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte("1234")))
	})

	invalid := []struct {
		name  string
		input service.CreateUserInput
		want  error
	}{
		{"blank email", service.CreateUserInput{Email: " ", FirstName: "A", LastName: "B"}, domain.ErrEmptyField},
		{"malformed email", service.CreateUserInput{Email: "a@b", FirstName: "A", LastName: "B"}, domain.ErrInvalidEmail},
		{"no at sign", service.CreateUserInput{Email: "ab.com", FirstName: "A", LastName: "B"}, domain.ErrInvalidEmail},
		{"blank first name", service.CreateUserInput{Email: "a@b.com", FirstName: "", LastName: "B"}, domain.ErrEmptyField},
		{"blank last name", service.CreateUserInput{Email: "a@b.com", FirstName: "A", LastName: "  "}, domain.ErrEmptyField},
		{"blank password", service.CreateUserInput{Email: "a@b.com", FirstName: "A", LastName: "B", Password: testutils.Ptr(" ")}, domain.ErrEmptyField},
		{
			"oversized password",
			service.CreateUserInput{Email: "a@b.com", FirstName: "A", LastName: "B", Password: testutils.Ptr(strings.Repeat("p", 73))},
			domain.ErrPasswordTooLong,
		},
	}
	for _, tc := range invalid {
		t.Run(tc.name, func(t *testing.T) {
			f := newTestFacade(t)
			user, err := f.CreateUser(ctx, tc.input)
			assert.Nil(t, user)
			assert.ErrorIs(t, err, tc.want)
			assert.True(t, domain.IsValidation(err))
			assert.Empty(t, f.GetAllUsers(ctx))
		})
	}

	t.Run("duplicate email", func(t *testing.T) {
		f := newTestFacade(t)
		createUser(t, f, "a@b.com")

		_, err := f.CreateUser(ctx, service.CreateUserInput{Email: "a@b.com", FirstName: "C", LastName: "D"})
		assert.ErrorIs(t, err, domain.ErrEmailExists)
		assert.True(t, domain.IsConflict(err))
		assert.Len(t, f.GetAllUsers(ctx), 1)
	})

	t.Run("email match is case sensitive", func(t *testing.T) {
		f := newTestFacade(t)
		createUser(t, f, "a@b.com")

		_, err := f.CreateUser(ctx, service.CreateUserInput{Email: "A@b.com", FirstName: "C", LastName: "D"})
		assert.NoError(t, err)
	})
}

func TestFacade_GetUser(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newTestFacade(t)
	user := createUser(t, f, "a@b.com")

	got, err := f.GetUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user, got)

	byEmail, err := f.GetUserByEmail(ctx, "a@b.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)

	_, err = f.GetUser(ctx, uuid.New())
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
	assert.True(t, domain.IsNotFound(err))
}

func TestFacade_GetAllUsersInCreationOrder(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newTestFacade(t)
	first := createUser(t, f, "z@b.com")
	second := createUser(t, f, "a@b.com")

	all := f.GetAllUsers(ctx)
	require.Len(t, all, 2)
	assert.Equal(t, first.ID, all[0].ID)
	assert.Equal(t, second.ID, all[1].ID)
}

func TestFacade_UpdateUser(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("partial update", func(t *testing.T) {
		f := newTestFacade(t)
		user := createUser(t, f, "a@b.com")

		updated, err := f.UpdateUser(ctx, user.ID, domain.UserPatch{FirstName: testutils.Ptr("Ada")})
		require.NoError(t, err)
		assert.Equal(t, "Ada", updated.FirstName)
		assert.Equal(t, "B", updated.LastName)
		assert.Equal(t, "a@b.com", updated.Email)
		assert.Equal(t, user.CreatedAt, updated.CreatedAt)
		assert.False(t, updated.UpdatedAt.Before(user.UpdatedAt))
	})

	t.Run("keeps own email", func(t *testing.T) {
		f := newTestFacade(t)
		user := createUser(t, f, "a@b.com")

		_, err := f.UpdateUser(ctx, user.ID, domain.UserPatch{Email: testutils.Ptr("a@b.com")})
		assert.NoError(t, err)
	})

	t.Run("email taken by another user", func(t *testing.T) {
		f := newTestFacade(t)
		createUser(t, f, "taken@b.com")
		user := createUser(t, f, "a@b.com")

		_, err := f.UpdateUser(ctx, user.ID, domain.UserPatch{Email: testutils.Ptr("taken@b.com")})
		assert.ErrorIs(t, err, domain.ErrEmailExists)

		stored, _ := f.GetUser(ctx, user.ID)
		assert.Equal(t, "a@b.com", stored.Email)
	})

	t.Run("invalid email", func(t *testing.T) {
		f := newTestFacade(t)
		user := createUser(t, f, "a@b.com")

		_, err := f.UpdateUser(ctx, user.ID, domain.UserPatch{Email: testutils.Ptr("nope")})
		assert.ErrorIs(t, err, domain.ErrInvalidEmail)
	})

	t.Run("unknown user", func(t *testing.T) {
		f := newTestFacade(t)
		_, err := f.UpdateUser(ctx, uuid.New(), domain.UserPatch{FirstName: testutils.Ptr("X")})
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})

	t.Run("password is rehashed", func(t *testing.T) {
		f := newTestFacade(t)
		user := createUser(t, f, "a@b.com")

		updated, err := f.UpdateUser(ctx, user.ID, domain.UserPatch{Password: testutils.Ptr("new-secret")})
		require.NoError(t, err)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(updated.HashedPassword), []byte("new-secret")))
	})

	t.Run("caller cannot set a hash directly", func(t *testing.T) {
		f := newTestFacade(t)
		user := createUser(t, f, "a@b.com")

		updated, err := f.UpdateUser(ctx, user.ID, domain.UserPatch{HashedPassword: testutils.Ptr("forged")})
		require.NoError(t, err)
		assert.Empty(t, updated.HashedPassword)
	})
}

func TestFacade_DeleteUser(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newTestFacade(t)
	user := createUser(t, f, "a@b.com")
	place := createPlace(t, f, user.ID)

	require.NoError(t, f.DeleteUser(ctx, user.ID))
	assert.ErrorIs(t, f.DeleteUser(ctx, user.ID), domain.ErrUserNotFound)

	// Owned places survive the owner.
	details, err := f.GetPlaceDetails(ctx, place.ID)
	require.NoError(t, err)
	assert.Nil(t, details.Owner)
	assert.Equal(t, user.ID, details.Place.OwnerID)

	// The email is free again.
	createUser(t, f, "a@b.com")
}
