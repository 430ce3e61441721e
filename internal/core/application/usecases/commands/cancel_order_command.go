package commands

import (
	"errors"

	"tableorder/internal/core/domain/model/order"
	"tableorder/internal/pkg/guard"
)

var ErrCancelOrderCommandIsNotConstructed = errors.New(
	"CancelOrderCommand must be created via NewCancelOrderCommand constructor",
)

// CancelOrderCommand cancels a single pending order of a bill.
type CancelOrderCommand struct {
	orderID int64

	guard guard.ConstructorGuard
}

func NewCancelOrderCommand(orderID int64) (CancelOrderCommand, error) {
	if err := order.ValidateID(orderID); err != nil {
		return CancelOrderCommand{}, err
	}

	return CancelOrderCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c CancelOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelOrderCommandIsNotConstructed)
}

func (c CancelOrderCommand) OrderID() int64 {
	return c.orderID
}
