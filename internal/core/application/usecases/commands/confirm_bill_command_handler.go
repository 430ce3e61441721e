package commands

import (
	"context"
	"time"

	"tableorder/internal/core/domain/model/bill"
	"tableorder/internal/core/domain/model/kernel"
	"tableorder/internal/core/domain/model/order"
	"tableorder/internal/pkg/errs"
)

type ConfirmBillResult struct {
	BillCode          kernel.BillCode
	CompletedOrderIDs []int64
}

// ConfirmBillCommandHandler completes all ready orders of a bill in one
// transaction, archiving each. Cancelled orders are skipped; any order still
// pending or cooking makes the whole call fail with bill.ErrNotConfirmable and
// nothing moves.
//
// Example:
//
//	handler := NewConfirmBillCommandHandler(uowFactory, broadcaster)
//	cmd, _ := NewConfirmBillCommand("B12")
//
//	result, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, bill.ErrNotConfirmable) {
//	    // some orders are still being prepared
//	}
//	// result.CompletedOrderIDs are archived, the bill has its receipt
type ConfirmBillCommandHandler struct {
	uowFactory UoWFactory
	publisher  EventPublisher
	now        func() time.Time
}

// NewConfirmBillCommandHandler creates a handler for whole-bill confirmation.
// Requires a UoWFactory spanning the bill, order and archive stores.
func NewConfirmBillCommandHandler(uowFactory UoWFactory, publisher EventPublisher) ConfirmBillCommandHandler {
	return ConfirmBillCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		now:        time.Now,
	}
}

// Handle completes and archives every ready order of the bill. A failed
// write or archive for any order rolls back the whole bill.
func (h ConfirmBillCommandHandler) Handle(ctx context.Context, command ConfirmBillCommand) (ConfirmBillResult, error) {
	if err := command.Validate(); err != nil {
		return ConfirmBillResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return ConfirmBillResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	b, err := uow.BillRepository().Get(ctx, command.Code())
	if err != nil {
		return ConfirmBillResult{}, err
	}

	ready, ok := b.ConfirmableOrders()
	if !ok {
		return ConfirmBillResult{}, errs.NewObjectConflictErrorWithCause(
			"bill", command.Code().String(), bill.ErrNotConfirmable,
		)
	}

	orderRepo := uow.OrderRepository()
	archiveRepo := uow.ArchiveRepository()
	at := h.now().UTC()

	events := make([]order.StatusChanged, 0, len(ready))
	ids := make([]int64, 0, len(ready))
	for _, o := range ready {
		previous, err := o.ChangeStatus(order.Completed)
		if err != nil {
			return ConfirmBillResult{}, err
		}

		if err = orderRepo.UpdateStatus(ctx, o, previous); err != nil {
			return ConfirmBillResult{}, err
		}

		if _, _, err = archiveCompleted(ctx, archiveRepo, o, at); err != nil {
			return ConfirmBillResult{}, err
		}

		events = append(events, o.StatusChanged())
		ids = append(ids, o.ID())
	}

	if err = uow.Commit(ctx); err != nil {
		return ConfirmBillResult{}, err
	}

	h.publisher.Publish(events...)

	return ConfirmBillResult{BillCode: command.Code(), CompletedOrderIDs: ids}, nil
}
