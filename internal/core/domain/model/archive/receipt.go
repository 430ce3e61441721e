package archive

import (
	"errors"
	"time"

	"tableorder/internal/core/domain/model/kernel"
)

var ErrReceiptIsNotConstructed = errors.New("Receipt must be created via NewReceipt constructor")

// Receipt ties a bill code to the archive of whichever of its orders
// completed first. There is at most one receipt per bill code.
type Receipt struct {
	code            kernel.BillCode
	archivedOrderID kernel.UUID
	issuedAt        time.Time

	isConstructed bool
}

func NewReceipt(code kernel.BillCode, archivedOrderID kernel.UUID, issuedAt time.Time) (*Receipt, error) {
	if err := errors.Join(code.Validate(), archivedOrderID.Validate()); err != nil {
		return nil, err
	}
	return &Receipt{
		code:            code,
		archivedOrderID: archivedOrderID,
		issuedAt:        issuedAt,
		isConstructed:   true,
	}, nil
}

// ReceiptFor issues the receipt of a freshly archived order.
func ReceiptFor(a *ArchivedOrder) (*Receipt, error) {
	if err := a.Validate(); err != nil {
		return nil, err
	}
	return NewReceipt(a.Code(), a.ID(), a.ArchivedAt())
}

func (r *Receipt) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrReceiptIsNotConstructed
	}
	return nil
}

func (r *Receipt) Code() kernel.BillCode {
	return r.code
}

func (r *Receipt) ArchivedOrderID() kernel.UUID {
	return r.archivedOrderID
}

func (r *Receipt) IssuedAt() time.Time {
	return r.issuedAt
}
