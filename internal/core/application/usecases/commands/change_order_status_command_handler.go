package commands

import (
	"context"
	"time"

	"tableorder/internal/core/domain/model/kernel"
	"tableorder/internal/core/domain/model/order"
)

// ChangeOrderStatusResult describes a committed transition. ArchivedOrderID is
// set when the transition completed the order.
type ChangeOrderStatusResult struct {
	OrderID         int64
	Status          order.Status
	ArchivedOrderID *kernel.UUID
}

// ChangeOrderStatusCommandHandler drives the order state machine.
//
// Every edge is checked in the domain and persisted as a conditional write on
// the status the order was read with, so a concurrent writer makes this call
// fail instead of being overwritten. Reaching completed archives the order in
// the same transaction. A cancelled target follows the same rules as
// CancelOrderCommandHandler and fails with order.ErrNotCancellable.
//
// Example:
//
//	handler := NewChangeOrderStatusCommandHandler(uowFactory, broadcaster)
//	cmd, _ := NewChangeOrderStatusCommand(42, "completed")
//
//	result, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("status change failed: %w", err)
//	}
//	// result.ArchivedOrderID points at the archive copy
type ChangeOrderStatusCommandHandler struct {
	uowFactory ArchiveUoWFactory
	publisher  EventPublisher
	now        func() time.Time
}

// NewChangeOrderStatusCommandHandler creates a handler for status transitions.
// The factory must hand out units of work that include the archive store.
func NewChangeOrderStatusCommandHandler(
	uowFactory ArchiveUoWFactory,
	publisher EventPublisher,
) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		now:        time.Now,
	}
}

// Handle loads the order, applies the transition and writes it conditionally.
// Reaching completed also archives the order and records the bill receipt.
// Events are published only after a successful commit.
func (h ChangeOrderStatusCommandHandler) Handle(
	ctx context.Context,
	command ChangeOrderStatusCommand,
) (ChangeOrderStatusResult, error) {
	if err := command.Validate(); err != nil {
		return ChangeOrderStatusResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return ChangeOrderStatusResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	o, err := orderRepo.Get(ctx, command.OrderID())
	if err != nil {
		return ChangeOrderStatusResult{}, err
	}

	previous, err := o.ChangeStatus(command.Status())
	if err != nil {
		return ChangeOrderStatusResult{}, err
	}

	if o.Status() == order.Cancelled {
		err = persistCancel(ctx, orderRepo, o)
	} else {
		err = orderRepo.UpdateStatus(ctx, o, previous)
	}
	if err != nil {
		return ChangeOrderStatusResult{}, err
	}

	result := ChangeOrderStatusResult{OrderID: o.ID(), Status: o.Status()}

	if o.Status() == order.Completed {
		result.ArchivedOrderID, _, err = archiveCompleted(ctx, uow.ArchiveRepository(), o, h.now().UTC())
		if err != nil {
			return ChangeOrderStatusResult{}, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return ChangeOrderStatusResult{}, err
	}

	h.publisher.Publish(o.StatusChanged())

	return result, nil
}
