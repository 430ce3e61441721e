package commands_test

import (
	"testing"

	"tableorder/internal/core/application/usecases/commands"
	"tableorder/internal/core/domain/model/order"
	"tableorder/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewChangeOrderStatusCommand_ValidInput(t *testing.T) {
	cmd, err := commands.NewChangeOrderStatusCommand(42, "preparing")

	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, int64(42), cmd.OrderID())
	assert.Equal(t, order.Preparing, cmd.Status())
}

func TestNewChangeOrderStatusCommand_UnknownStatus(t *testing.T) {
	_, err := commands.NewChangeOrderStatusCommand(42, "served")

	require.ErrorIs(t, err, order.ErrInvalidStatus)
	assert.True(t, errs.IsValidation(err))
}

func TestNewChangeOrderStatusCommand_InvalidID(t *testing.T) {
	_, err := commands.NewChangeOrderStatusCommand(0, "ready")

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestChangeOrderStatusCommand_NotConstructed(t *testing.T) {
	cmd := commands.ChangeOrderStatusCommand{}

	assert.ErrorIs(t, cmd.Validate(), commands.ErrChangeOrderStatusCommandIsNotConstructed)
}
