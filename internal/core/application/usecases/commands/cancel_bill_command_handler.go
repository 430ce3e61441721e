package commands

import (
	"context"

	"tableorder/internal/core/domain/model/bill"
	"tableorder/internal/core/domain/model/kernel"
	"tableorder/internal/core/domain/model/order"
	"tableorder/internal/pkg/errs"
)

type CancelBillResult struct {
	BillCode          kernel.BillCode
	CancelledOrderIDs []int64
}

// CancelBillCommandHandler cancels the pending orders of a bill with a single
// conditional write. Orders that already moved on are left untouched; if none
// is pending any more the call fails with order.ErrNotCancellable.
//
// Example:
//
//	handler := NewCancelBillCommandHandler(uowFactory, broadcaster)
//	cmd, _ := NewCancelBillCommand("B12")
//
//	result, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("bill cancellation failed: %w", err)
//	}
//	// result.CancelledOrderIDs lists only the orders this call cancelled
type CancelBillCommandHandler struct {
	uowFactory UoWFactory
	publisher  EventPublisher
}

// NewCancelBillCommandHandler creates a handler for whole-bill cancellation.
// Requires a UoWFactory that exposes the bill and order stores.
func NewCancelBillCommandHandler(uowFactory UoWFactory, publisher EventPublisher) CancelBillCommandHandler {
	return CancelBillCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle checks that the bill has orders, then cancels every order still
// pending in one statement. Concurrent calls cancel each order at most once.
func (h CancelBillCommandHandler) Handle(ctx context.Context, command CancelBillCommand) (CancelBillResult, error) {
	if err := command.Validate(); err != nil {
		return CancelBillResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return CancelBillResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	b, err := uow.BillRepository().Get(ctx, command.Code())
	if err != nil {
		return CancelBillResult{}, err
	}

	if !hasPending(b) {
		return CancelBillResult{}, notCancellable(command.Code())
	}

	ids, err := uow.OrderRepository().CancelPendingByBill(ctx, command.Code())
	if err != nil {
		return CancelBillResult{}, err
	}
	if len(ids) == 0 {
		return CancelBillResult{}, notCancellable(command.Code())
	}

	if err = uow.Commit(ctx); err != nil {
		return CancelBillResult{}, err
	}

	events := make([]order.StatusChanged, 0, len(ids))
	for _, id := range ids {
		events = append(events, order.StatusChanged{OrderID: id, Status: order.Cancelled, BillCode: command.Code()})
	}
	h.publisher.Publish(events...)

	return CancelBillResult{BillCode: command.Code(), CancelledOrderIDs: ids}, nil
}

func hasPending(b *bill.Bill) bool {
	for _, o := range b.Orders() {
		if bill.CanCancelOrder(o) {
			return true
		}
	}
	return false
}

func notCancellable(code kernel.BillCode) error {
	return errs.NewObjectConflictErrorWithCause("bill", code.String(), order.ErrNotCancellable)
}
