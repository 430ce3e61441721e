package queries

import (
	"errors"
	"time"

	"tableorder/internal/core/domain/model/kernel"
	"tableorder/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetTodayOrdersQueryIsNotConstructed = errors.New(
	"GetTodayOrdersQuery must be created via NewGetTodayOrdersQuery constructor",
)

// GetTodayOrdersQuery lists every order placed during a business day, the
// staff dashboard's main table.
type GetTodayOrdersQuery struct {
	day kernel.BusinessDay

	guard guard.ConstructorGuard
}

func NewGetTodayOrdersQuery(day kernel.BusinessDay) (GetTodayOrdersQuery, error) {
	if err := day.Validate(); err != nil {
		return GetTodayOrdersQuery{}, err
	}
	return GetTodayOrdersQuery{day: day, guard: guard.NewConstructorGuard()}, nil
}

func (q GetTodayOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetTodayOrdersQueryIsNotConstructed)
}

func (q GetTodayOrdersQuery) Day() kernel.BusinessDay {
	return q.day
}

type GetTodayOrdersQueryResponse struct {
	ID          int64
	BillCode    string
	TableNumber int
	Status      string
	Total       decimal.Decimal
	CreatedAt   time.Time
}
