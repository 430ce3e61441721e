package ports

import (
	"context"

	"tableorder/internal/core/domain/model/archive"
	"tableorder/internal/core/domain/model/kernel"
)

// ArchiveRepository stores archived orders and receipts.
type ArchiveRepository interface {
	// Add inserts the archived order together with its items.
	Add(ctx context.Context, archived *archive.ArchivedOrder) error

	// FindIDForOrder returns the id of the archive copy of the source order,
	// or nil if the order was never archived.
	FindIDForOrder(ctx context.Context, sourceOrderID int64) (*kernel.UUID, error)

	// AddReceiptIfAbsent inserts the receipt unless one already exists for
	// its bill code. A duplicate is not an error; created tells the two apart.
	AddReceiptIfAbsent(ctx context.Context, receipt *archive.Receipt) (created bool, err error)
}
