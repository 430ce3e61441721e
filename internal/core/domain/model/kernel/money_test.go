package kernel_test

import (
	"testing"

	"tableorder/internal/core/domain/model/kernel"
	"tableorder/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	t.Run("accepts zero and positive amounts", func(t *testing.T) {
		zero, err := kernel.NewMoney(decimal.Zero)
		require.NoError(t, err)
		assert.Equal(t, "0.00", zero.String())

		price, err := kernel.NewMoney(decimal.RequireFromString("45.5"))
		require.NoError(t, err)
		assert.Equal(t, "45.50", price.String())
	})

	t.Run("rejects negative amounts", func(t *testing.T) {
		_, err := kernel.NewMoney(decimal.NewFromInt(-1))

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "-1 is negative")
	})
}

func TestMoneyFromString(t *testing.T) {
	m, err := kernel.MoneyFromString("120.25")
	require.NoError(t, err)
	assert.True(t, m.Decimal().Equal(decimal.RequireFromString("120.25")))

	_, err = kernel.MoneyFromString("twelve")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestMoney_Arithmetic(t *testing.T) {
	price, _ := kernel.MoneyFromString("0.10")

	subtotal := price.Times(3)
	assert.Equal(t, "0.30", subtotal.String())

	total := kernel.ZeroMoney().Add(subtotal).Add(price)
	assert.True(t, total.IsEqual(price.Times(4)))
}
