package order_test

import (
	"testing"

	"logistics/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_TransitionTo(t *testing.T) {
	t.Run("allows each forward step in the chain", func(t *testing.T) {
		steps := []struct {
			from order.Status
			to   order.Status
		}{
			{order.Pending, order.Processing},
			{order.Processing, order.Shipped},
			{order.Shipped, order.Delivered},
		}

		for _, step := range steps {
			got, err := step.from.TransitionTo(step.to)
			require.NoError(t, err, "%s -> %s", step.from, step.to)
			assert.Equal(t, step.to, got)
		}
	})

	t.Run("allows cancellation from any non-terminal state", func(t *testing.T) {
		for _, from := range []order.Status{order.Pending, order.Processing, order.Shipped} {
			got, err := from.TransitionTo(order.Cancelled)
			require.NoError(t, err, "cancel from %s", from)
			assert.Equal(t, order.Cancelled, got)
		}
	})

	t.Run("rejects backward moves", func(t *testing.T) {
		_, err := order.Shipped.TransitionTo(order.Processing)
		require.ErrorIs(t, err, order.ErrInvalidTransition)

		_, err = order.Processing.TransitionTo(order.Pending)
		require.ErrorIs(t, err, order.ErrInvalidTransition)
	})

	t.Run("rejects skipped steps", func(t *testing.T) {
		_, err := order.Pending.TransitionTo(order.Shipped)
		require.ErrorIs(t, err, order.ErrInvalidTransition)

		_, err = order.Pending.TransitionTo(order.Delivered)
		require.ErrorIs(t, err, order.ErrInvalidTransition)
	})

	t.Run("rejects any move out of a terminal state", func(t *testing.T) {
		for _, terminal := range []order.Status{order.Delivered, order.Cancelled} {
			for _, to := range []order.Status{
				order.Pending, order.Processing, order.Shipped, order.Delivered, order.Cancelled,
			} {
				_, err := terminal.TransitionTo(to)
				require.ErrorIs(t, err, order.ErrInvalidTransition, "%s -> %s", terminal, to)
			}
		}
	})

	t.Run("rejects unknown target", func(t *testing.T) {
		_, err := order.Pending.TransitionTo(order.Status(42))
		require.ErrorIs(t, err, order.ErrInvalidTransition)
	})
}

func TestStatusFromString(t *testing.T) {
	t.Run("maps known names", func(t *testing.T) {
		for s, name := range map[order.Status]string{
			order.Pending:    "Pending",
			order.Processing: "Processing",
			order.Shipped:    "Shipped",
			order.Delivered:  "Delivered",
			order.Cancelled:  "Cancelled",
		} {
			got, err := order.StatusFromString(name)
			require.NoError(t, err)
			assert.Equal(t, s, got)
		}
	})

	t.Run("rejects arbitrary caller-supplied strings", func(t *testing.T) {
		_, err := order.StatusFromString("Teleported")
		require.ErrorIs(t, err, order.ErrInvalidTransition)
	})
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.True(t, order.Delivered.IsTerminal())
	assert.True(t, order.Cancelled.IsTerminal())
	assert.False(t, order.Pending.IsTerminal())
	assert.False(t, order.Processing.IsTerminal())
	assert.False(t, order.Shipped.IsTerminal())
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "Processing", order.Processing.String())
	assert.Equal(t, "Unknown", order.Status(99).String())
}
