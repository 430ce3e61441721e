package commands

import (
	"context"
	"time"

	"tableorder/internal/core/domain/model/kernel"
	"tableorder/internal/core/domain/model/order"
	"tableorder/internal/core/domain/services"
	"tableorder/internal/core/ports"
)

// archiveCompleted copies a completed order into the archive and offers its
// receipt to the bill. It runs inside the caller's transaction so a failure in
// any step rolls the status change back with it. An order that already has an
// archive is left alone and the existing archive id is returned with created
// set to false.
func archiveCompleted(
	ctx context.Context,
	repo ports.ArchiveRepository,
	o *order.Order,
	at time.Time,
) (id *kernel.UUID, created bool, err error) {
	existing, err := repo.FindIDForOrder(ctx, o.ID())
	if err != nil {
		return nil, false, err
	}
	if existing != nil {
		return existing, false, nil
	}

	archival, err := services.NewOrderArchiver().Archive(o, at)
	if err != nil {
		return nil, false, err
	}

	if err = repo.Add(ctx, archival.Order); err != nil {
		return nil, false, err
	}

	if _, err = repo.AddReceiptIfAbsent(ctx, archival.Receipt); err != nil {
		return nil, false, err
	}

	archivedID := archival.Order.ID()
	return &archivedID, true, nil
}
