package archive

import (
	"errors"
	"fmt"
	"time"

	"tableorder/internal/core/domain/model/kernel"
	"tableorder/internal/core/domain/model/order"
	"tableorder/internal/pkg/errs"
)

var ErrArchivedOrderIsNotConstructed = errors.New("ArchivedOrder must be created via Snapshot or RestoreArchivedOrder")

// ArchivedOrder is the historical copy of a completed order.
type ArchivedOrder struct {
	id            kernel.UUID
	sourceOrderID int64
	code          kernel.BillCode
	tableNumber   int
	status        order.Status
	total         kernel.Money
	orderedAt     time.Time
	archivedAt    time.Time
	items         []ArchivedItem

	isConstructed bool
}

// ArchivedItem is the historical copy of one order line.
type ArchivedItem struct {
	MenuID         int64
	MenuName       string
	Quantity       int
	Price          kernel.Money
	Note           string
	SpecialRequest string
}

// Subtotal is quantity x price, recomputed rather than stored.
func (i ArchivedItem) Subtotal() kernel.Money {
	return i.Price.Times(i.Quantity)
}

// Snapshot copies a completed order and its items under a fresh identity.
func Snapshot(o *order.Order, archivedAt time.Time) (*ArchivedOrder, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	if o.Status() != order.Completed {
		return nil, errs.NewObjectConflictErrorWithCause(
			"order", o.ID(), fmt.Errorf("only completed orders are archived, status is %s", o.Status()),
		)
	}

	items := make([]ArchivedItem, 0, len(o.Items()))
	for _, item := range o.Items() {
		items = append(items, ArchivedItem{
			MenuID:         item.MenuID(),
			MenuName:       item.MenuName(),
			Quantity:       item.Quantity(),
			Price:          item.Price(),
			Note:           item.Note(),
			SpecialRequest: item.SpecialRequest(),
		})
	}

	return &ArchivedOrder{
		id:            kernel.NewUUID(),
		sourceOrderID: o.ID(),
		code:          o.Code(),
		tableNumber:   o.TableNumber(),
		status:        o.Status(),
		total:         o.Total(),
		orderedAt:     o.CreatedAt(),
		archivedAt:    archivedAt,
		items:         items,
		isConstructed: true,
	}, nil
}

// RestoreParams carries the persisted attributes of an archived order.
type RestoreParams struct {
	ID            kernel.UUID
	SourceOrderID int64
	Code          kernel.BillCode
	TableNumber   int
	Status        order.Status
	Total         kernel.Money
	OrderedAt     time.Time
	ArchivedAt    time.Time
	Items         []ArchivedItem
}

func RestoreArchivedOrder(p RestoreParams) (*ArchivedOrder, error) {
	if err := errors.Join(
		p.ID.Validate(),
		order.ValidateID(p.SourceOrderID),
		p.Code.Validate(),
		p.Status.Validate(),
	); err != nil {
		return nil, err
	}

	return &ArchivedOrder{
		id:            p.ID,
		sourceOrderID: p.SourceOrderID,
		code:          p.Code,
		tableNumber:   p.TableNumber,
		status:        p.Status,
		total:         p.Total,
		orderedAt:     p.OrderedAt,
		archivedAt:    p.ArchivedAt,
		items:         p.Items,
		isConstructed: true,
	}, nil
}

func (a *ArchivedOrder) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrArchivedOrderIsNotConstructed
	}
	return nil
}

func (a *ArchivedOrder) ID() kernel.UUID {
	return a.id
}

func (a *ArchivedOrder) SourceOrderID() int64 {
	return a.sourceOrderID
}

func (a *ArchivedOrder) Code() kernel.BillCode {
	return a.code
}

func (a *ArchivedOrder) TableNumber() int {
	return a.tableNumber
}

func (a *ArchivedOrder) Status() order.Status {
	return a.status
}

func (a *ArchivedOrder) Total() kernel.Money {
	return a.total
}

func (a *ArchivedOrder) OrderedAt() time.Time {
	return a.orderedAt
}

func (a *ArchivedOrder) ArchivedAt() time.Time {
	return a.archivedAt
}

func (a *ArchivedOrder) Items() []ArchivedItem {
	items := make([]ArchivedItem, len(a.items))
	copy(items, a.items)
	return items
}

// ItemsTotal sums the archived line subtotals.
func (a *ArchivedOrder) ItemsTotal() kernel.Money {
	sum := kernel.ZeroMoney()
	for _, item := range a.items {
		sum = sum.Add(item.Subtotal())
	}
	return sum
}
