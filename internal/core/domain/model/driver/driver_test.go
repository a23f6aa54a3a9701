package driver_test

import (
	"testing"
	"time"

	"logistics/internal/core/domain/model/driver"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDriver(t *testing.T) *driver.Driver {
	t.Helper()
	d, err := driver.NewDriver(
		kernel.NewUUID(),
		kernel.NewUUID(),
		"DL-123456",
		time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC),
		7,
	)
	require.NoError(t, err)
	return d
}

func TestNewDriver(t *testing.T) {
	t.Run("creates an available driver with default rating", func(t *testing.T) {
		d := newTestDriver(t)

		require.NoError(t, d.Validate())
		assert.True(t, d.IsAvailable())
		assert.InEpsilon(t, 5.0, d.Rating(), 1e-9)
		assert.Equal(t, 7, d.ExperienceYears())
	})

	t.Run("fails with empty license number", func(t *testing.T) {
		_, err := driver.NewDriver(kernel.NewUUID(), kernel.NewUUID(), "",
			time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC), 3)

		require.ErrorIs(t, err, driver.ErrLicenseNumberIsRequired)
	})

	t.Run("fails with zero license expiry", func(t *testing.T) {
		_, err := driver.NewDriver(kernel.NewUUID(), kernel.NewUUID(), "DL-1", time.Time{}, 3)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("fails with negative experience", func(t *testing.T) {
		_, err := driver.NewDriver(kernel.NewUUID(), kernel.NewUUID(), "DL-1",
			time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC), -1)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestRestoreDriver(t *testing.T) {
	t.Run("preserves rating and availability", func(t *testing.T) {
		d, err := driver.RestoreDriver(kernel.NewUUID(), kernel.NewUUID(), "DL-9",
			time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC), 2, 3.8, false)

		require.NoError(t, err)
		assert.InEpsilon(t, 3.8, d.Rating(), 1e-9)
		assert.False(t, d.IsAvailable())
	})

	t.Run("rejects rating outside bounds", func(t *testing.T) {
		_, err := driver.RestoreDriver(kernel.NewUUID(), kernel.NewUUID(), "DL-9",
			time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC), 2, 5.5, true)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

		_, err = driver.RestoreDriver(kernel.NewUUID(), kernel.NewUUID(), "DL-9",
			time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC), 2, -0.1, true)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestDriver_ClaimRelease(t *testing.T) {
	t.Run("claim flips availability", func(t *testing.T) {
		d := newTestDriver(t)

		require.NoError(t, d.Claim())
		assert.False(t, d.IsAvailable())
	})

	t.Run("claiming a claimed driver fails", func(t *testing.T) {
		d := newTestDriver(t)
		require.NoError(t, d.Claim())

		require.ErrorIs(t, d.Claim(), driver.ErrDriverNotAvailable)
	})

	t.Run("release is idempotent", func(t *testing.T) {
		d := newTestDriver(t)
		require.NoError(t, d.Claim())

		d.Release()
		d.Release()

		assert.True(t, d.IsAvailable())
		require.NoError(t, d.Claim())
	})
}

func TestDriver_Validate(t *testing.T) {
	var nilDriver *driver.Driver
	require.ErrorIs(t, nilDriver.Validate(), driver.ErrDriverIsNotConstructed)

	var zero driver.Driver
	require.ErrorIs(t, zero.Validate(), driver.ErrDriverIsNotConstructed)
}
