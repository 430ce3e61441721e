package ports

import (
	"context"
)

// UnitOfWorkFactory creates a fresh UnitOfWork for every command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is one database transaction with the repositories bound to it.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error

	// Repositories returned after Begin run inside the transaction.
	OrderRepository() OrderRepository
	BillRepository() BillRepository
	ArchiveRepository() ArchiveRepository
}
