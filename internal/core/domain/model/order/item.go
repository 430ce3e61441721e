package order

import (
	"errors"
	"fmt"

	"tableorder/internal/core/domain/model/kernel"
	"tableorder/internal/pkg/errs"
)

var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is one menu line of an order. Items are immutable once the order is placed.
type Item struct {
	id             int64
	menuID         int64
	menuName       string
	quantity       int
	price          kernel.Money
	note           string
	specialRequest string

	isConstructed bool
}

// ItemParams carries the persisted attributes of an item.
type ItemParams struct {
	ID             int64
	MenuID         int64
	MenuName       string
	Quantity       int
	Price          kernel.Money
	Note           string
	SpecialRequest string
}

func NewItem(p ItemParams) (*Item, error) {
	if p.MenuID <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("menu id", fmt.Errorf("%d is not greater than 0", p.MenuID))
	}
	if p.Quantity <= 0 {
		return nil, errs.NewValueIsOutOfRangeError("quantity", p.Quantity, 1, "unbounded")
	}

	return &Item{
		id:             p.ID,
		menuID:         p.MenuID,
		menuName:       p.MenuName,
		quantity:       p.Quantity,
		price:          p.Price,
		note:           p.Note,
		specialRequest: p.SpecialRequest,
		isConstructed:  true,
	}, nil
}

func (i *Item) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

func (i *Item) ID() int64 {
	return i.id
}

func (i *Item) MenuID() int64 {
	return i.menuID
}

func (i *Item) MenuName() string {
	return i.menuName
}

func (i *Item) Quantity() int {
	return i.quantity
}

func (i *Item) Price() kernel.Money {
	return i.price
}

func (i *Item) Note() string {
	return i.note
}

func (i *Item) SpecialRequest() string {
	return i.specialRequest
}

func (i *Item) Subtotal() kernel.Money {
	return i.price.Times(i.quantity)
}

