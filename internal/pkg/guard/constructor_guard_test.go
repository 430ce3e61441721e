package guard_test

import (
	"errors"
	"testing"

	"tableorder/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	errNotConstructed := errors.New("command not constructed")

	t.Run("constructed_guard_passes", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errNotConstructed))
		require.NoError(t, g.Validate(nil))
	})

	t.Run("zero_value_returns_supplied_error", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(errNotConstructed)

		require.Error(t, err)
		assert.Equal(t, errNotConstructed, err)
	})

	t.Run("zero_value_falls_back_to_default_error", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(nil)

		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
		assert.Equal(t, "object must be created via its constructor", err.Error())
	})
}

func TestConstructorGuard_EmbeddedInCommand(t *testing.T) {
	errCmd := errors.New("CancelBill must be created via NewCancelBill")

	type cancelBill struct {
		code  string
		guard guard.ConstructorGuard
	}
	newCancelBill := func(code string) (cancelBill, error) {
		if code == "" {
			return cancelBill{}, errors.New("bill code is required")
		}
		return cancelBill{code: code, guard: guard.NewConstructorGuard()}, nil
	}

	cmd, err := newCancelBill("B1")
	require.NoError(t, err)
	require.NoError(t, cmd.guard.Validate(errCmd))

	literal := cancelBill{code: "B1"}
	require.ErrorIs(t, literal.guard.Validate(errCmd), errCmd)

	_, err = newCancelBill("")
	require.Error(t, err)
}

func TestConstructorGuard_ConcurrentValidate(t *testing.T) {
	g := guard.NewConstructorGuard()
	done := make(chan struct{})

	for range 50 {
		go func() {
			defer func() { done <- struct{}{} }()
			for range 100 {
				assert.NoError(t, g.Validate(nil))
			}
		}()
	}

	for range 50 {
		<-done
	}
}
