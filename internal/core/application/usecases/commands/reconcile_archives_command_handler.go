package commands

import (
	"context"
	"time"
)

// ReconcileArchivesCommandHandler repairs completed orders that were never
// archived, for example rows completed by tooling that bypassed this service.
// It goes through the same idempotent archival path as a live completion.
//
// Example:
//
//	handler := NewReconcileArchivesCommandHandler(uowFactory)
//	cmd, _ := NewReconcileArchivesCommand(100)
//
//	archived, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("archive reconciliation failed: %w", err)
//	}
//	// archived counts only orders copied by this pass
type ReconcileArchivesCommandHandler struct {
	uowFactory ArchiveUoWFactory
	now        func() time.Time
}

// NewReconcileArchivesCommandHandler creates the handler used by the
// reconciliation job. No events are published: nothing changes status.
func NewReconcileArchivesCommandHandler(uowFactory ArchiveUoWFactory) ReconcileArchivesCommandHandler {
	return ReconcileArchivesCommandHandler{
		uowFactory: uowFactory,
		now:        time.Now,
	}
}

// Handle archives up to BatchSize completed orders in one transaction and
// returns how many archive copies it created.
func (h ReconcileArchivesCommandHandler) Handle(ctx context.Context, command ReconcileArchivesCommand) (int, error) {
	if err := command.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orders, err := uow.OrderRepository().ListCompletedUnarchived(ctx, command.BatchSize())
	if err != nil {
		return 0, err
	}
	if len(orders) == 0 {
		return 0, nil
	}

	archiveRepo := uow.ArchiveRepository()
	at := h.now().UTC()

	archived := 0
	for _, o := range orders {
		_, created, err := archiveCompleted(ctx, archiveRepo, o, at)
		if err != nil {
			return 0, err
		}
		if created {
			archived++
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return archived, nil
}
