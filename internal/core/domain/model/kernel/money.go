package kernel

import (
	"fmt"

	"tableorder/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Money is a non-negative amount in the restaurant's single currency.
// Arithmetic is done with shopspring/decimal to avoid float drift on totals.
type Money struct {
	amount decimal.Decimal
}

// ZeroMoney is the additive identity used to start sums.
func ZeroMoney() Money {
	return Money{amount: decimal.Zero}
}

// NewMoney validates that amount is not negative.
func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"money is invalid",
			fmt.Errorf("%s is negative", amount.String()),
		)
	}
	return Money{amount: amount}, nil
}

// MoneyFromString parses a decimal literal such as "120.50".
func MoneyFromString(s string) (Money, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("money is invalid", err)
	}
	return NewMoney(amount)
}

func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// Times multiplies by a quantity; used for line subtotals.
func (m Money) Times(quantity int) Money {
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(quantity)))}
}

func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// String renders two fractional digits, matching the numeric(10,2) columns.
func (m Money) String() string {
	return m.amount.StringFixed(2)
}
