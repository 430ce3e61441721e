package commands

import (
	"errors"

	"tableorder/internal/core/domain/model/order"
	"tableorder/internal/pkg/guard"
)

var ErrChangeOrderStatusCommandIsNotConstructed = errors.New(
	"ChangeOrderStatusCommand must be created via NewChangeOrderStatusCommand constructor",
)

// ChangeOrderStatusCommand moves one order to a target status.
//
// Example:
//
//	cmd, err := NewChangeOrderStatusCommand(42, "ready")
//	if err != nil {
//	    return err // validation, nothing was read from storage
//	}
//	result, err := handler.Handle(ctx, cmd)
type ChangeOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID int64
	status  order.Status

	guard guard.ConstructorGuard
}

// NewChangeOrderStatusCommand validates the identifier and parses the raw
// status. Unknown status strings fail with order.ErrInvalidStatus.
func NewChangeOrderStatusCommand(orderID int64, status string) (ChangeOrderStatusCommand, error) {
	cmd := ChangeOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setStatus(status),
	); err != nil {
		return ChangeOrderStatusCommand{}, err
	}

	return cmd, nil
}

func (c ChangeOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeOrderStatusCommandIsNotConstructed)
}

func (c ChangeOrderStatusCommand) OrderID() int64 {
	return c.orderID
}

func (c ChangeOrderStatusCommand) Status() order.Status {
	return c.status
}

func (c *ChangeOrderStatusCommand) setOrderID(orderID int64) error {
	if err := order.ValidateID(orderID); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ChangeOrderStatusCommand) setStatus(raw string) error {
	status, err := order.ParseStatus(raw)
	if err != nil {
		return err
	}

	c.status = status
	return nil
}
