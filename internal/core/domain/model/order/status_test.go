package order_test

import (
	"testing"

	"tableorder/internal/core/domain/model/order"
	"tableorder/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	for _, s := range []string{"pending", "preparing", "ready", "completed", "cancelled"} {
		t.Run(s, func(t *testing.T) {
			status, err := order.ParseStatus(s)

			require.NoError(t, err)
			assert.Equal(t, s, status.String())
		})
	}

	for _, s := range []string{"", "PENDING", "done", "canceled"} {
		t.Run("rejects "+s, func(t *testing.T) {
			_, err := order.ParseStatus(s)

			require.ErrorIs(t, err, order.ErrInvalidStatus)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		})
	}
}

func TestStatus_CanTransitionTo(t *testing.T) {
	legal := map[order.Status][]order.Status{
		order.Pending:   {order.Preparing, order.Cancelled},
		order.Preparing: {order.Ready},
		order.Ready:     {order.Completed},
		order.Completed: {},
		order.Cancelled: {},
	}

	for _, from := range order.AllStatuses() {
		for _, to := range order.AllStatuses() {
			expected := false
			for _, allowed := range legal[from] {
				if allowed == to {
					expected = true
				}
			}

			assert.Equal(t, expected, from.CanTransitionTo(to), "%s -> %s", from, to)
		}
	}
}

func TestStatus_TransitionTo(t *testing.T) {
	t.Run("forward edge", func(t *testing.T) {
		next, err := order.Ready.TransitionTo(order.Completed)

		require.NoError(t, err)
		assert.Equal(t, order.Completed, next)
	})

	t.Run("cancelled never returns to pending", func(t *testing.T) {
		_, err := order.Cancelled.TransitionTo(order.Pending)

		require.ErrorIs(t, err, order.ErrTransitionNotAllowed)
		assert.Contains(t, err.Error(), "cancelled -> pending")
	})

	t.Run("completed order cannot be re-marked preparing", func(t *testing.T) {
		_, err := order.Completed.TransitionTo(order.Preparing)

		require.ErrorIs(t, err, order.ErrTransitionNotAllowed)
	})

	t.Run("skipping a step is rejected", func(t *testing.T) {
		_, err := order.Pending.TransitionTo(order.Ready)

		require.ErrorIs(t, err, order.ErrTransitionNotAllowed)
	})

	t.Run("unknown target is a validation error", func(t *testing.T) {
		_, err := order.Pending.TransitionTo(order.Status("served"))

		require.ErrorIs(t, err, order.ErrInvalidStatus)
	})
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.True(t, order.Completed.IsTerminal())
	assert.True(t, order.Cancelled.IsTerminal())
	assert.False(t, order.Pending.IsTerminal())
	assert.False(t, order.Preparing.IsTerminal())
	assert.False(t, order.Ready.IsTerminal())
}

func TestPrevious(t *testing.T) {
	testCases := []struct {
		target   order.Status
		expected order.Status
		ok       bool
	}{
		{order.Preparing, order.Pending, true},
		{order.Ready, order.Preparing, true},
		{order.Completed, order.Ready, true},
		{order.Cancelled, order.Pending, true},
		{order.Pending, "", false},
	}

	for _, tc := range testCases {
		t.Run(tc.target.String(), func(t *testing.T) {
			prev, ok := order.Previous(tc.target)

			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.expected, prev)
		})
	}
}
