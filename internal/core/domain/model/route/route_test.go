package route_test

import (
	"testing"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/route"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRoute(t *testing.T) {
	t.Run("creates an active route", func(t *testing.T) {
		r, err := route.NewRoute(kernel.NewUUID(), "North corridor", "Hamburg", "Berlin",
			289, 3*time.Hour+30*time.Minute)

		require.NoError(t, err)
		require.NoError(t, r.Validate())
		assert.True(t, r.IsActive())
		assert.InEpsilon(t, 289.0, r.DistanceKm(), 1e-9)
		assert.Equal(t, 3*time.Hour+30*time.Minute, r.EstimatedDuration())
	})

	t.Run("fails with missing fields", func(t *testing.T) {
		_, err := route.NewRoute(kernel.NewUUID(), "", "", "", 0, 0)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("fails with non-positive distance or duration", func(t *testing.T) {
		_, err := route.NewRoute(kernel.NewUUID(), "R", "A", "B", -1, time.Hour)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)

		_, err = route.NewRoute(kernel.NewUUID(), "R", "A", "B", 10, 0)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestRoute_Deactivate(t *testing.T) {
	r, err := route.NewRoute(kernel.NewUUID(), "R", "A", "B", 10, time.Hour)
	require.NoError(t, err)

	r.Deactivate()

	assert.False(t, r.IsActive())
}

func TestRestoreRoute(t *testing.T) {
	r, err := route.RestoreRoute(kernel.NewUUID(), "R", "A", "B", 10, time.Hour, false)

	require.NoError(t, err)
	assert.False(t, r.IsActive())
}
