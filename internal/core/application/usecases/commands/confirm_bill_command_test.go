package commands_test

import (
	"strings"
	"testing"

	"tableorder/internal/core/application/usecases/commands"
	"tableorder/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfirmBillCommand_ValidInput(t *testing.T) {
	cmd, err := commands.NewConfirmBillCommand("B7")

	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, "B7", cmd.Code().String())
}

func TestNewConfirmBillCommand_InvalidCode(t *testing.T) {
	for _, code := range []string{"", "   ", strings.Repeat("x", 65)} {
		_, err := commands.NewConfirmBillCommand(code)
		assert.True(t, errs.IsValidation(err), "code %q", code)
	}
}

func TestConfirmBillCommand_NotConstructed(t *testing.T) {
	assert.ErrorIs(t, commands.ConfirmBillCommand{}.Validate(), commands.ErrConfirmBillCommandIsNotConstructed)
}
