// Package bill composes a shared bill (header plus every order placed under
// its code) and derives the totals and actions the bill screen offers.
package bill

import (
	"errors"
	"fmt"
	"time"

	"tableorder/internal/core/domain/model/kernel"
	"tableorder/internal/core/domain/model/order"
	"tableorder/internal/pkg/errs"
)

var (
	ErrBillNotFound  = errors.New("bill not found")
	ErrNoOrdersFound = errors.New("no orders found for bill")

	// ErrNotConfirmable is returned when an order of the bill has not reached ready yet.
	ErrNotConfirmable = errors.New("bill has orders that are not ready")
)

// BulkAction is the whole-bill action offered when every order of the bill
// shares one status.
type BulkAction string

const (
	NoBulkAction BulkAction = "none"
	CancelAll    BulkAction = "cancel_all"
	ConfirmAll   BulkAction = "confirm_all"
)

// Header is the shared-bill record created when a table session places its
// first order. Read-only here.
type Header struct {
	Code        kernel.BillCode
	TableNumber int
	CreatedAt   time.Time
}

// Bill is a read model: a header with all of its orders.
type Bill struct {
	header Header
	orders []*order.Order
}

// New joins a header with its orders. A header without orders is reported as
// an inconsistency rather than an empty bill.
func New(header Header, orders []*order.Order) (*Bill, error) {
	if err := header.Code.Validate(); err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return nil, NoOrdersFound(header.Code)
	}
	for _, o := range orders {
		if !o.Code().IsEqual(header.Code) {
			return nil, errs.NewValueIsInvalidErrorWithCause(
				"bill orders", fmt.Errorf("order %d belongs to bill %s", o.ID(), o.Code()),
			)
		}
	}
	return &Bill{header: header, orders: orders}, nil
}

func (b *Bill) Header() Header {
	return b.header
}

func (b *Bill) Orders() []*order.Order {
	orders := make([]*order.Order, len(b.orders))
	copy(orders, b.orders)
	return orders
}

// Total sums the totals of every order that was not cancelled.
func (b *Bill) Total() kernel.Money {
	sum := kernel.ZeroMoney()
	for _, o := range b.orders {
		if o.Status() == order.Cancelled {
			continue
		}
		sum = sum.Add(o.Total())
	}
	return sum
}

// CanCancelOrder is the per-order cancel affordance: on whenever that order is pending.
func CanCancelOrder(o *order.Order) bool {
	return o.Status() == order.Pending
}

// BulkAction is the whole-bill affordance: cancel-all when every order is
// pending, confirm-all when every order is ready, otherwise none.
func (b *Bill) BulkAction() BulkAction {
	first := b.orders[0].Status()
	for _, o := range b.orders[1:] {
		if o.Status() != first {
			return NoBulkAction
		}
	}

	switch first {
	case order.Pending:
		return CancelAll
	case order.Ready:
		return ConfirmAll
	default:
		return NoBulkAction
	}
}

// ConfirmableOrders returns the ready orders of the bill if every order that
// was not cancelled is ready, which is the precondition of confirming the bill.
func (b *Bill) ConfirmableOrders() ([]*order.Order, bool) {
	ready := make([]*order.Order, 0, len(b.orders))
	for _, o := range b.orders {
		switch o.Status() {
		case order.Cancelled:
			continue
		case order.Ready:
			ready = append(ready, o)
		default:
			return nil, false
		}
	}
	return ready, len(ready) > 0
}

func NotFound(code kernel.BillCode) error {
	return errs.NewObjectNotFoundErrorWithCause("bill", code.String(), ErrBillNotFound)
}

func NoOrdersFound(code kernel.BillCode) error {
	return errs.NewObjectNotFoundErrorWithCause("bill", code.String(), ErrNoOrdersFound)
}
