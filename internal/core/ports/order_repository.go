// Package ports defines the contracts between the lifecycle engine and its
// infrastructure: the order, bill and archive stores, the unit of work that
// binds them to one transaction, and the realtime notifier.
package ports

import (
	"context"

	"tableorder/internal/core/domain/model/kernel"
	"tableorder/internal/core/domain/model/order"
)

// OrderRepository is the persistence contract of the order aggregate.
// Orders are placed elsewhere, so the contract has no Add and no Delete:
// rows are retained after archival.
type OrderRepository interface {
	// Get loads an order with its items. Returns order.NotFound when absent.
	Get(ctx context.Context, id int64) (*order.Order, error)

	// UpdateStatus writes the aggregate's current status only if the stored
	// status still equals expected. When no row matches, it reports
	// order.NotFound for a missing order and a conflict wrapping
	// order.ErrTransitionNotAllowed when another writer got there first.
	UpdateStatus(ctx context.Context, aggregate *order.Order, expected order.Status) error

	// CancelPendingByBill cancels every pending order of the bill in one
	// conditional write and returns the ids it actually changed.
	CancelPendingByBill(ctx context.Context, code kernel.BillCode) ([]int64, error)

	// ListCompletedUnarchived returns up to limit completed orders that have
	// no archive entry yet, oldest first.
	ListCompletedUnarchived(ctx context.Context, limit int) ([]*order.Order, error)
}
