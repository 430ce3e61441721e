package order

import (
	"errors"
	"fmt"
	"time"

	"tableorder/internal/core/domain/model/kernel"
	"tableorder/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order was not built through RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via RestoreOrder constructor")

	// ErrOrderNotFound is the cause carried by NotFound errors.
	ErrOrderNotFound = errors.New("order not found")

	// ErrNotCancellable is returned when an existing order has already left pending.
	ErrNotCancellable = errors.New("order is no longer pending and cannot be cancelled")
)

// Order is one cart placed under a bill. It is the aggregate root whose status
// is driven by the lifecycle commands. Placement happens outside this service,
// so orders are only ever restored from storage.
type Order struct {
	id          int64
	code        kernel.BillCode
	tableNumber int
	status      Status
	total       kernel.Money
	createdAt   time.Time
	items       []*Item

	isConstructed bool
}

// Params carries the persisted attributes of an order.
type Params struct {
	ID          int64
	Code        kernel.BillCode
	TableNumber int
	Status      Status
	Total       kernel.Money
	CreatedAt   time.Time
	Items       []*Item
}

// RestoreOrder rebuilds an order from storage, validating every attribute.
func RestoreOrder(p Params) (*Order, error) {
	o := &Order{
		total:         p.Total,
		createdAt:     p.CreatedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(p.ID),
		o.setCode(p.Code),
		o.setTableNumber(p.TableNumber),
		o.setStatus(p.Status),
		o.setItems(p.Items),
	); err != nil {
		return nil, err
	}

	return o, nil
}

func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

func (o *Order) ID() int64 {
	return o.id
}

func (o *Order) Code() kernel.BillCode {
	return o.code
}

func (o *Order) TableNumber() int {
	return o.tableNumber
}

func (o *Order) Status() Status {
	return o.status
}

func (o *Order) Total() kernel.Money {
	return o.total
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// Items returns a copy of the line items so callers cannot reorder the aggregate's slice.
func (o *Order) Items() []*Item {
	items := make([]*Item, len(o.items))
	copy(items, o.items)
	return items
}

// ItemsTotal sums the subtotals of the line items.
func (o *Order) ItemsTotal() kernel.Money {
	sum := kernel.ZeroMoney()
	for _, item := range o.items {
		sum = sum.Add(item.Subtotal())
	}
	return sum
}

// ChangeStatus moves the order along the state machine and returns the status
// it held before, which the store uses as the expected value of its
// conditional write. A cancelled target goes through Cancel, so it fails with
// ErrNotCancellable rather than ErrTransitionNotAllowed.
func (o *Order) ChangeStatus(target Status) (Status, error) {
	if target == Cancelled {
		if err := o.Cancel(); err != nil {
			return "", err
		}
		return Pending, nil
	}

	next, err := o.status.TransitionTo(target)
	if err != nil {
		if errors.Is(err, ErrInvalidStatus) {
			return "", err
		}
		return "", errs.NewObjectConflictErrorWithCause("order", o.id, err)
	}

	previous := o.status
	o.status = next
	return previous, nil
}

// Cancel moves a pending order to cancelled.
func (o *Order) Cancel() error {
	if o.status != Pending {
		return errs.NewObjectConflictErrorWithCause(
			"order", o.id, fmt.Errorf("%w: status is %s", ErrNotCancellable, o.status),
		)
	}
	o.status = Cancelled
	return nil
}

func (o *Order) setID(id int64) error {
	if err := ValidateID(id); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCode(code kernel.BillCode) error {
	if err := code.Validate(); err != nil {
		return err
	}
	o.code = code
	return nil
}

func (o *Order) setTableNumber(table int) error {
	if table <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("table number", fmt.Errorf("%d is not greater than 0", table))
	}
	o.tableNumber = table
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setItems(items []*Item) error {
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	o.items = items
	return nil
}

// NotFound builds the error reported when no order has the given id.
func NotFound(id int64) error {
	return errs.NewObjectNotFoundErrorWithCause("order", id, ErrOrderNotFound)
}

// ValidateID checks an order identifier received from a caller.
func ValidateID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("order id", fmt.Errorf("%d is not greater than 0", id))
	}
	return nil
}
