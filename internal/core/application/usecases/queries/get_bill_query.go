package queries

import (
	"errors"
	"time"

	"tableorder/internal/core/domain/model/bill"
	"tableorder/internal/core/domain/model/kernel"
	"tableorder/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetBillQueryIsNotConstructed = errors.New(
	"GetBillQuery must be created via NewGetBillQuery constructor",
)

// GetBillQuery loads the consolidated view of one shared bill.
//
// Example:
//
//	query, err := NewGetBillQuery("B1")
//	if err != nil {
//	    return err
//	}
//	view, err := handler.Handle(ctx, query)
//	fmt.Println(view.Total, view.BulkAction)
type GetBillQuery struct {
	code kernel.BillCode

	guard guard.ConstructorGuard
}

func NewGetBillQuery(code string) (GetBillQuery, error) {
	billCode, err := kernel.NewBillCode(code)
	if err != nil {
		return GetBillQuery{}, err
	}
	return GetBillQuery{code: billCode, guard: guard.NewConstructorGuard()}, nil
}

func (q GetBillQuery) Validate() error {
	return q.guard.Validate(ErrGetBillQueryIsNotConstructed)
}

func (q GetBillQuery) Code() kernel.BillCode {
	return q.code
}

// GetBillQueryResponse is the bill screen: header, orders with lines, the
// total over orders that were not cancelled, and both cancel affordances.
type GetBillQueryResponse struct {
	Code        string
	TableNumber int
	CreatedAt   time.Time
	Total       decimal.Decimal
	BulkAction  bill.BulkAction
	Orders      []BillOrderResponse
}

type BillOrderResponse struct {
	ID          int64
	Status      string
	Total       decimal.Decimal
	CreatedAt   time.Time
	Cancellable bool
	Items       []ItemResponse
}
