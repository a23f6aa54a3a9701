package vehicle_test

import (
	"testing"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/vehicle"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestVehicle(t *testing.T) *vehicle.Vehicle {
	t.Helper()
	v, err := vehicle.NewVehicle(
		kernel.NewUUID(),
		"AB-1234-CD",
		"Truck",
		"Volvo",
		"FH16",
		2021,
		vehicle.Capacity{WeightKg: 12000, VolumeCubicM: 60},
	)
	require.NoError(t, err)
	return v
}

func TestNewVehicle(t *testing.T) {
	t.Run("creates an available vehicle", func(t *testing.T) {
		v := newTestVehicle(t)

		require.NoError(t, v.Validate())
		assert.True(t, v.IsAvailable())
		assert.Equal(t, "AB-1234-CD", v.LicensePlate())
		assert.Equal(t, "Truck", v.VehicleType())
		assert.Zero(t, v.MileageKm())
	})

	t.Run("fails with empty license plate", func(t *testing.T) {
		_, err := vehicle.NewVehicle(kernel.NewUUID(), "", "Van", "Ford", "Transit", 2020,
			vehicle.Capacity{WeightKg: 1000, VolumeCubicM: 9})

		require.ErrorIs(t, err, vehicle.ErrLicensePlateIsRequired)
	})

	t.Run("fails with non-positive capacity", func(t *testing.T) {
		_, err := vehicle.NewVehicle(kernel.NewUUID(), "XX-1", "Van", "Ford", "Transit", 2020,
			vehicle.Capacity{WeightKg: 0, VolumeCubicM: 9})
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)

		_, err = vehicle.NewVehicle(kernel.NewUUID(), "XX-1", "Van", "Ford", "Transit", 2020,
			vehicle.Capacity{WeightKg: 1000, VolumeCubicM: -1})
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("fails with empty type", func(t *testing.T) {
		_, err := vehicle.NewVehicle(kernel.NewUUID(), "XX-1", "", "Ford", "Transit", 2020,
			vehicle.Capacity{WeightKg: 1000, VolumeCubicM: 9})

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestVehicle_ClaimRelease(t *testing.T) {
	t.Run("claim flips availability and reclaim fails", func(t *testing.T) {
		v := newTestVehicle(t)

		require.NoError(t, v.Claim())
		assert.False(t, v.IsAvailable())
		require.ErrorIs(t, v.Claim(), vehicle.ErrVehicleNotAvailable)
	})

	t.Run("release is idempotent", func(t *testing.T) {
		v := newTestVehicle(t)
		require.NoError(t, v.Claim())

		v.Release()
		v.Release()

		assert.True(t, v.IsAvailable())
	})
}

func TestVehicle_AddMileage(t *testing.T) {
	v := newTestVehicle(t)

	require.NoError(t, v.AddMileage(120))
	require.NoError(t, v.AddMileage(80))
	assert.Equal(t, 200, v.MileageKm())

	require.ErrorIs(t, v.AddMileage(-5), errs.ErrValueIsInvalid)
}

func TestRestoreVehicle(t *testing.T) {
	v, err := vehicle.RestoreVehicle(kernel.NewUUID(), "ZZ-9", "Van", "MAN", "TGE", 2019,
		vehicle.Capacity{WeightKg: 900, VolumeCubicM: 11}, 154000, false)

	require.NoError(t, err)
	assert.Equal(t, 154000, v.MileageKm())
	assert.False(t, v.IsAvailable())
}
