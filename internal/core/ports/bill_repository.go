package ports

import (
	"context"

	"tableorder/internal/core/domain/model/bill"
	"tableorder/internal/core/domain/model/kernel"
)

// BillRepository loads a shared bill for the commands that act on all of its
// orders at once.
type BillRepository interface {
	// Get returns the header with every order of the bill, items included.
	// Fails with bill.NotFound or bill.NoOrdersFound.
	Get(ctx context.Context, code kernel.BillCode) (*bill.Bill, error)
}
