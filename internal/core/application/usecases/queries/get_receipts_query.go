package queries

import (
	"errors"
	"time"

	"tableorder/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetReceiptsQueryIsNotConstructed = errors.New(
	"GetReceiptsQuery must be created via NewGetReceiptsQuery constructor",
)

// GetReceiptsQuery lists the order history: every receipt with the archived
// orders of its bill and their lines.
type GetReceiptsQuery struct {
	guard guard.ConstructorGuard
}

func NewGetReceiptsQuery() GetReceiptsQuery {
	return GetReceiptsQuery{guard: guard.NewConstructorGuard()}
}

func (q GetReceiptsQuery) Validate() error {
	return q.guard.Validate(ErrGetReceiptsQueryIsNotConstructed)
}

type GetReceiptsQueryResponse struct {
	Code     string
	IssuedAt time.Time
	Orders   []ArchivedOrderResponse
}

type ArchivedOrderResponse struct {
	ID            string
	SourceOrderID int64
	TableNumber   int
	Status        string
	Total         decimal.Decimal
	OrderedAt     time.Time
	ArchivedAt    time.Time
	Items         []ArchivedItemResponse
}

type ArchivedItemResponse struct {
	MenuID         int64
	MenuName       string
	Quantity       int
	Price          decimal.Decimal
	Subtotal       decimal.Decimal
	Note           string
	SpecialRequest string
}
