package queries

import (
	"errors"

	"tableorder/internal/core/domain/model/order"
	"tableorder/internal/pkg/guard"
)

var ErrGetOrderItemsQueryIsNotConstructed = errors.New(
	"GetOrderItemsQuery must be created via NewGetOrderItemsQuery constructor",
)

// GetOrderItemsQuery lists the lines of one order for the kitchen view.
type GetOrderItemsQuery struct {
	orderID int64

	guard guard.ConstructorGuard
}

func NewGetOrderItemsQuery(orderID int64) (GetOrderItemsQuery, error) {
	if err := order.ValidateID(orderID); err != nil {
		return GetOrderItemsQuery{}, err
	}
	return GetOrderItemsQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderItemsQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderItemsQueryIsNotConstructed)
}

func (q GetOrderItemsQuery) OrderID() int64 {
	return q.orderID
}
