package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/phrazzld/hbnb-api/internal/domain"
	"github.com/phrazzld/hbnb-api/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFacade_Amenities(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	f := newTestFacade(t)

	t.Run("create", func(t *testing.T) {
		amenity, err := f.CreateAmenity(ctx, "Wi-Fi", "")
		require.NoError(t, err)
		assert.Equal(t, "", amenity.Description)

		_, err = f.CreateAmenity(ctx, "  ", "desc")
		assert.ErrorIs(t, err, domain.ErrEmptyField)
	})

	t.Run("update", func(t *testing.T) {
		amenity := createAmenity(t, f, "Pool")

		updated, err := f.UpdateAmenity(ctx, amenity.ID, domain.AmenityPatch{Description: testutils.Ptr("Heated")})
		require.NoError(t, err)
		assert.Equal(t, "Pool", updated.Name)
		assert.Equal(t, "Heated", updated.Description)

		_, err = f.UpdateAmenity(ctx, amenity.ID, domain.AmenityPatch{Name: testutils.Ptr("")})
		assert.ErrorIs(t, err, domain.ErrEmptyField)

		stored, err := f.GetAmenity(ctx, amenity.ID)
		require.NoError(t, err)
		assert.Equal(t, "Pool", stored.Name)

		_, err = f.UpdateAmenity(ctx, uuid.New(), domain.AmenityPatch{Name: testutils.Ptr("X")})
		assert.ErrorIs(t, err, domain.ErrAmenityNotFound)
	})

	t.Run("delete", func(t *testing.T) {
		amenity := createAmenity(t, f, "Parking")

		require.NoError(t, f.DeleteAmenity(ctx, amenity.ID))
		assert.ErrorIs(t, f.DeleteAmenity(ctx, amenity.ID), domain.ErrAmenityNotFound)
		_, err := f.GetAmenity(ctx, amenity.ID)
		assert.ErrorIs(t, err, domain.ErrAmenityNotFound)
	})
}

func TestFacade_GetAllAmenities(t *testing.T) {
	t.Parallel()
	f := newTestFacade(t)
	assert.Empty(t, f.GetAllAmenities(context.Background()))

	wifi := createAmenity(t, f, "Wi-Fi")
	pool := createAmenity(t, f, "Pool")

	all := f.GetAllAmenities(context.Background())
	require.Len(t, all, 2)
	assert.Equal(t, wifi.ID, all[0].ID)
	assert.Equal(t, pool.ID, all[1].ID)
}
