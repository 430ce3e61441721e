package queries

import (
	"errors"

	"tableorder/internal/core/domain/model/kernel"
	"tableorder/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetTodayRevenueQueryIsNotConstructed = errors.New(
	"GetTodayRevenueQuery must be created via NewGetTodayRevenueQuery constructor",
)

// GetTodayRevenueQuery sums the completed orders of a business day.
type GetTodayRevenueQuery struct {
	day kernel.BusinessDay

	guard guard.ConstructorGuard
}

func NewGetTodayRevenueQuery(day kernel.BusinessDay) (GetTodayRevenueQuery, error) {
	if err := day.Validate(); err != nil {
		return GetTodayRevenueQuery{}, err
	}
	return GetTodayRevenueQuery{day: day, guard: guard.NewConstructorGuard()}, nil
}

func (q GetTodayRevenueQuery) Validate() error {
	return q.guard.Validate(ErrGetTodayRevenueQueryIsNotConstructed)
}

func (q GetTodayRevenueQuery) Day() kernel.BusinessDay {
	return q.day
}

type GetTodayRevenueQueryResponse struct {
	TotalRevenue decimal.Decimal
	TotalOrders  int64
	Date         string
}
