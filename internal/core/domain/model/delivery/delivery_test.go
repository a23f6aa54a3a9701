package delivery_test

import (
	"testing"

	"logistics/internal/core/domain/model/delivery"
	"logistics/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRecipient() delivery.Recipient {
	return delivery.Recipient{
		Name:    "Jane Smith",
		Phone:   "+49-30-1234567",
		Address: "Invalidenstr. 5",
		City:    "Berlin",
	}
}

func newTestDelivery(t *testing.T, signatureRequired bool) *delivery.Delivery {
	t.Helper()
	d, err := delivery.NewDelivery(kernel.NewUUID(), kernel.NewUUID(), testRecipient(), signatureRequired)
	require.NoError(t, err)
	return d
}

func TestNewDelivery(t *testing.T) {
	t.Run("starts with first attempt in progress", func(t *testing.T) {
		d := newTestDelivery(t, false)

		require.NoError(t, d.Validate())
		assert.Equal(t, delivery.InTransit, d.Status())
		assert.Equal(t, 1, d.Attempts())
		assert.False(t, d.SignatureObtained())
		assert.Nil(t, d.DeliveryTime())
	})

	t.Run("fails with incomplete recipient", func(t *testing.T) {
		r := testRecipient()
		r.Phone = ""

		_, err := delivery.NewDelivery(kernel.NewUUID(), kernel.NewUUID(), r, false)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "recipientPhone")
	})
}

func TestDelivery_Complete(t *testing.T) {
	t.Run("completes without signature when not required", func(t *testing.T) {
		d := newTestDelivery(t, false)

		require.NoError(t, d.Complete(false))

		assert.Equal(t, delivery.Delivered, d.Status())
		require.NotNil(t, d.DeliveryTime())
		assert.False(t, d.SignatureObtained())
		assert.Nil(t, d.SignatureDate())
	})

	t.Run("records signature when obtained", func(t *testing.T) {
		d := newTestDelivery(t, true)

		require.NoError(t, d.Complete(true))

		assert.True(t, d.SignatureObtained())
		require.NotNil(t, d.SignatureDate())
	})

	t.Run("fails without a required signature", func(t *testing.T) {
		d := newTestDelivery(t, true)

		err := d.Complete(false)

		require.ErrorIs(t, err, delivery.ErrSignatureRequired)
		assert.Equal(t, delivery.InTransit, d.Status())
		assert.False(t, d.SignatureObtained())
	})

	t.Run("fails from a terminal state", func(t *testing.T) {
		d := newTestDelivery(t, false)
		require.NoError(t, d.Complete(false))

		require.ErrorIs(t, d.Complete(false), delivery.ErrInvalidTransition)
	})
}

func TestDelivery_FailAndReattempt(t *testing.T) {
	t.Run("failure keeps attempt count until a reattempt starts", func(t *testing.T) {
		d := newTestDelivery(t, false)

		require.NoError(t, d.Fail("nobody home"))

		assert.Equal(t, delivery.Failed, d.Status())
		assert.Equal(t, 1, d.Attempts())
		assert.Contains(t, d.Notes(), "attempt 1 failed: nobody home")
	})

	t.Run("reattempt increments the counter", func(t *testing.T) {
		d := newTestDelivery(t, false)
		require.NoError(t, d.Fail("nobody home"))

		require.NoError(t, d.StartReattempt())

		assert.Equal(t, delivery.Reattempt, d.Status())
		assert.Equal(t, 2, d.Attempts())
	})

	t.Run("reattempted delivery can complete", func(t *testing.T) {
		d := newTestDelivery(t, false)
		require.NoError(t, d.Fail("nobody home"))
		require.NoError(t, d.StartReattempt())

		require.NoError(t, d.Complete(false))
		assert.Equal(t, delivery.Delivered, d.Status())
	})

	t.Run("attempt cap makes the failure terminal", func(t *testing.T) {
		d := newTestDelivery(t, false)

		for i := 1; i < delivery.MaxAttempts; i++ {
			require.NoError(t, d.Fail("nobody home"))
			require.NoError(t, d.StartReattempt())
		}
		require.NoError(t, d.Fail("nobody home"))

		assert.Equal(t, delivery.MaxAttempts, d.Attempts())
		assert.True(t, d.IsTerminallyFailed())
		require.ErrorIs(t, d.StartReattempt(), delivery.ErrMaxAttemptsExceeded)
	})

	t.Run("reattempt requires a failed status", func(t *testing.T) {
		d := newTestDelivery(t, false)

		require.ErrorIs(t, d.StartReattempt(), delivery.ErrInvalidTransition)
	})

	t.Run("fail requires an attempt in progress", func(t *testing.T) {
		d := newTestDelivery(t, false)
		require.NoError(t, d.Fail("nobody home"))

		require.ErrorIs(t, d.Fail("again"), delivery.ErrInvalidTransition)
	})
}

func TestRestoreDelivery(t *testing.T) {
	t.Run("preserves persisted state", func(t *testing.T) {
		d, err := delivery.RestoreDelivery(kernel.NewUUID(), kernel.NewUUID(), testRecipient(),
			true, false, nil, nil, "attempt 1 failed: refused", delivery.Failed, 2)

		require.NoError(t, err)
		assert.Equal(t, delivery.Failed, d.Status())
		assert.Equal(t, 2, d.Attempts())
		assert.False(t, d.IsTerminallyFailed())
	})

	t.Run("rejects attempts outside bounds", func(t *testing.T) {
		_, err := delivery.RestoreDelivery(kernel.NewUUID(), kernel.NewUUID(), testRecipient(),
			false, false, nil, nil, "", delivery.Failed, delivery.MaxAttempts+1)

		require.Error(t, err)
	})
}
