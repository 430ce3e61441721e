// Package commands contains the operations that change order state.
// Every handler follows the same shape: validate the command, open a unit of
// work, apply the domain change through conditional writes, commit, and only
// then hand the resulting events to the publisher.
package commands

import (
	"context"

	"tableorder/internal/core/domain/model/order"
	"tableorder/internal/core/ports"
)

// Unit of Work interfaces narrowed to what each handler touches.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	BillRepoFactory interface {
		BillRepository() ports.BillRepository
	}

	ArchiveRepoFactory interface {
		ArchiveRepository() ports.ArchiveRepository
	}

	// OrderUoW is used by single-order cancellation, which never archives.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// ArchiveUoW covers transitions that may complete orders and therefore
	// archive them in the same transaction.
	ArchiveUoW interface {
		TxManager
		OrderRepoFactory
		ArchiveRepoFactory
	}

	ArchiveUoWFactory interface {
		Create() ArchiveUoW
	}

	// UoW spans all stores and is used by the whole-bill operations.
	UoW interface {
		TxManager
		OrderRepoFactory
		BillRepoFactory
		ArchiveRepoFactory
	}

	UoWFactory interface {
		Create() UoW
	}
)

// EventPublisher receives status changes after they are committed. It must
// not block the caller and has no way to report failure back.
type EventPublisher interface {
	Publish(events ...order.StatusChanged)
}
