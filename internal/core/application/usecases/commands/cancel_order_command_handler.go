package commands

import (
	"context"
	"errors"
	"fmt"

	"tableorder/internal/core/domain/model/order"
	"tableorder/internal/core/ports"
	"tableorder/internal/pkg/errs"
)

type CancelOrderResult struct {
	OrderID int64
	Status  order.Status
}

// CancelOrderCommandHandler is the race-safe cancellation guard. The write is
// "set cancelled where status is still pending", so of several concurrent
// calls exactly one succeeds and the rest see order.ErrNotCancellable.
// Missing orders are reported as not found, never as not cancellable.
//
// Example:
//
//	handler := NewCancelOrderCommandHandler(uowFactory, broadcaster)
//	cmd, _ := NewCancelOrderCommand(42)
//
//	result, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, order.ErrNotCancellable) {
//	    // the kitchen already started on it
//	}
//	// result.Status == order.Cancelled
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  EventPublisher
}

// NewCancelOrderCommandHandler creates a handler for single-order cancellation.
// The publisher receives the status change after commit.
func NewCancelOrderCommandHandler(uowFactory OrderUoWFactory, publisher EventPublisher) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle cancels the order if it is still pending. The status check and the
// write happen in one transaction; a writer that got there first turns the
// result into order.ErrNotCancellable.
func (h CancelOrderCommandHandler) Handle(ctx context.Context, command CancelOrderCommand) (CancelOrderResult, error) {
	if err := command.Validate(); err != nil {
		return CancelOrderResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return CancelOrderResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	o, err := orderRepo.Get(ctx, command.OrderID())
	if err != nil {
		return CancelOrderResult{}, err
	}

	if err = o.Cancel(); err != nil {
		return CancelOrderResult{}, err
	}

	if err = persistCancel(ctx, orderRepo, o); err != nil {
		return CancelOrderResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return CancelOrderResult{}, err
	}

	h.publisher.Publish(o.StatusChanged())

	return CancelOrderResult{OrderID: o.ID(), Status: o.Status()}, nil
}

// persistCancel writes a cancellation already applied to o, expecting the
// stored row to be pending. Losing that race to another writer is reported
// as order.ErrNotCancellable, like a cancel of a non-pending order.
func persistCancel(ctx context.Context, repo ports.OrderRepository, o *order.Order) error {
	err := repo.UpdateStatus(ctx, o, order.Pending)
	if errors.Is(err, order.ErrTransitionNotAllowed) {
		return errs.NewObjectConflictErrorWithCause(
			"order", o.ID(), fmt.Errorf("%w: changed concurrently", order.ErrNotCancellable),
		)
	}
	return err
}
