package shipment_test

import (
	"testing"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestShipment(t *testing.T) *shipment.Shipment {
	t.Helper()
	s, err := shipment.NewShipment(
		kernel.NewUUID(),
		"SHP-2024-0001",
		kernel.NewUUID(),
		kernel.NewUUID(),
		kernel.NewUUID(),
		kernel.NewUUID(),
		200,
	)
	require.NoError(t, err)
	return s
}

func TestNewShipment(t *testing.T) {
	t.Run("creates a pending shipment holding resources", func(t *testing.T) {
		s := newTestShipment(t)

		require.NoError(t, s.Validate())
		assert.Equal(t, shipment.Pending, s.Status())
		assert.True(t, s.Status().HoldsResources())
		assert.False(t, s.ResourcesReleased())
		assert.Nil(t, s.DepartureTime())
		assert.Nil(t, s.ActualArrivalTime())
	})

	t.Run("fails with empty shipment number", func(t *testing.T) {
		_, err := shipment.NewShipment(kernel.NewUUID(), "", kernel.NewUUID(),
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), 100)

		require.ErrorIs(t, err, shipment.ErrShipmentNumberIsRequired)
	})

	t.Run("fails with missing references and joins errors", func(t *testing.T) {
		var zero kernel.UUID

		_, err := shipment.NewShipment(kernel.NewUUID(), "SHP-1", zero, zero, zero, zero, 100)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "orderId")
		assert.Contains(t, err.Error(), "driverId")
		assert.Contains(t, err.Error(), "vehicleId")
		assert.Contains(t, err.Error(), "routeId")
	})
}

func TestShipment_Depart(t *testing.T) {
	t.Run("records departure and expected arrival", func(t *testing.T) {
		s := newTestShipment(t)

		require.NoError(t, s.Depart(4*time.Hour))

		assert.Equal(t, shipment.InTransit, s.Status())
		require.NotNil(t, s.DepartureTime())
		require.NotNil(t, s.ExpectedArrivalTime())
		assert.Equal(t, 4*time.Hour, s.ExpectedArrivalTime().Sub(*s.DepartureTime()))
	})

	t.Run("fails from a non-pending status", func(t *testing.T) {
		s := newTestShipment(t)
		require.NoError(t, s.Depart(time.Hour))

		require.ErrorIs(t, s.Depart(time.Hour), shipment.ErrInvalidTransition)
	})
}

func TestShipment_Deliver(t *testing.T) {
	t.Run("records arrival and distance", func(t *testing.T) {
		s := newTestShipment(t)
		require.NoError(t, s.Depart(time.Hour))

		require.NoError(t, s.Deliver(289))

		assert.Equal(t, shipment.Delivered, s.Status())
		require.NotNil(t, s.ActualArrivalTime())
		assert.InEpsilon(t, 289.0, s.DistanceTraveledKm(), 1e-9)
	})

	t.Run("fails before departure", func(t *testing.T) {
		s := newTestShipment(t)

		require.ErrorIs(t, s.Deliver(100), shipment.ErrInvalidTransition)
	})
}

func TestShipment_DelayAndCancel(t *testing.T) {
	t.Run("delayed shipment keeps its claim", func(t *testing.T) {
		s := newTestShipment(t)
		require.NoError(t, s.Depart(time.Hour))

		require.NoError(t, s.Delay())

		assert.Equal(t, shipment.Delayed, s.Status())
		assert.True(t, s.Status().HoldsResources())

		_, err := s.ReleaseClaim()
		require.ErrorIs(t, err, shipment.ErrClaimStillHeld)
	})

	t.Run("delayed shipment can only be cancelled", func(t *testing.T) {
		s := newTestShipment(t)
		require.NoError(t, s.Depart(time.Hour))
		require.NoError(t, s.Delay())

		require.ErrorIs(t, s.Deliver(10), shipment.ErrInvalidTransition)
		require.ErrorIs(t, s.Depart(time.Hour), shipment.ErrInvalidTransition)
		require.NoError(t, s.Cancel())
	})

	t.Run("cancel works from pending and in transit", func(t *testing.T) {
		s := newTestShipment(t)
		require.NoError(t, s.Cancel())

		s = newTestShipment(t)
		require.NoError(t, s.Depart(time.Hour))
		require.NoError(t, s.Cancel())
	})

	t.Run("terminal states reject all transitions", func(t *testing.T) {
		s := newTestShipment(t)
		require.NoError(t, s.Depart(time.Hour))
		require.NoError(t, s.Deliver(10))

		require.ErrorIs(t, s.Cancel(), shipment.ErrInvalidTransition)
		require.ErrorIs(t, s.Delay(), shipment.ErrInvalidTransition)
	})
}

func TestShipment_ReleaseClaim(t *testing.T) {
	t.Run("releases exactly once after a releasing terminal transition", func(t *testing.T) {
		s := newTestShipment(t)
		require.NoError(t, s.Depart(time.Hour))
		require.NoError(t, s.Deliver(10))

		first, err := s.ReleaseClaim()
		require.NoError(t, err)
		assert.True(t, first)

		second, err := s.ReleaseClaim()
		require.NoError(t, err)
		assert.False(t, second)
		assert.True(t, s.ResourcesReleased())
	})

	t.Run("fails while the claim is held", func(t *testing.T) {
		s := newTestShipment(t)

		_, err := s.ReleaseClaim()
		require.ErrorIs(t, err, shipment.ErrClaimStillHeld)
	})
}

func TestShipment_ValidateInTransit(t *testing.T) {
	s := newTestShipment(t)
	require.ErrorIs(t, s.ValidateInTransit(), shipment.ErrShipmentNotInTransit)

	require.NoError(t, s.Depart(time.Hour))
	require.NoError(t, s.ValidateInTransit())

	require.NoError(t, s.Cancel())
	require.ErrorIs(t, s.ValidateInTransit(), shipment.ErrShipmentNotInTransit)
}

func TestStatusFromString(t *testing.T) {
	got, err := shipment.StatusFromString("InTransit")
	require.NoError(t, err)
	assert.Equal(t, shipment.InTransit, got)

	_, err = shipment.StatusFromString("Lost")
	require.ErrorIs(t, err, shipment.ErrInvalidTransition)
}

func TestRestoreShipment(t *testing.T) {
	departed := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
	expected := departed.Add(3 * time.Hour)

	s, err := shipment.RestoreShipment(
		kernel.NewUUID(), "SHP-7", kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		kernel.NewUUID(), 150, shipment.InTransit, &departed, &expected, nil, 0, 0, false)

	require.NoError(t, err)
	assert.Equal(t, shipment.InTransit, s.Status())
	assert.Equal(t, departed, *s.DepartureTime())
	assert.False(t, s.ResourcesReleased())
}
