package queries

import (
	"errors"

	"tableorder/internal/core/domain/model/kernel"
	"tableorder/internal/pkg/guard"
)

var ErrGetTodayOpenCountQueryIsNotConstructed = errors.New(
	"GetTodayOpenCountQuery must be created via NewGetTodayOpenCountQuery constructor",
)

// GetTodayOpenCountQuery counts the orders of a business day that are not in
// a terminal status.
type GetTodayOpenCountQuery struct {
	day kernel.BusinessDay

	guard guard.ConstructorGuard
}

func NewGetTodayOpenCountQuery(day kernel.BusinessDay) (GetTodayOpenCountQuery, error) {
	if err := day.Validate(); err != nil {
		return GetTodayOpenCountQuery{}, err
	}
	return GetTodayOpenCountQuery{day: day, guard: guard.NewConstructorGuard()}, nil
}

func (q GetTodayOpenCountQuery) Validate() error {
	return q.guard.Validate(ErrGetTodayOpenCountQueryIsNotConstructed)
}

func (q GetTodayOpenCountQuery) Day() kernel.BusinessDay {
	return q.day
}
