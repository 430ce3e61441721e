package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"tableorder/internal/core/domain/model/bill"
	"tableorder/internal/core/domain/model/kernel"
	"tableorder/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// maxParallelItemLoads caps the item queries one bill fans out to.
const maxParallelItemLoads = 4

type GetBillQueryHandler struct {
	db *gorm.DB
}

func NewGetBillQueryHandler(db *gorm.DB) GetBillQueryHandler {
	return GetBillQueryHandler{db: db}
}

// Handle reads the header, then the bill's orders, then every order's lines
// in parallel. Totals and affordances are computed by the bill domain model
// so the screen and the bill-level commands apply the same rules.
func (h GetBillQueryHandler) Handle(ctx context.Context, query GetBillQuery) (GetBillQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetBillQueryResponse{}, err
	}

	header, err := h.loadHeader(ctx, query.Code())
	if err != nil {
		return GetBillQueryResponse{}, err
	}

	orders, err := h.loadOrders(ctx, query.Code())
	if err != nil {
		return GetBillQueryResponse{}, err
	}

	b, err := bill.New(header, orders)
	if err != nil {
		return GetBillQueryResponse{}, err
	}

	response := GetBillQueryResponse{
		Code:        header.Code.String(),
		TableNumber: header.TableNumber,
		CreatedAt:   header.CreatedAt,
		Total:       b.Total().Decimal(),
		BulkAction:  b.BulkAction(),
		Orders:      make([]BillOrderResponse, len(orders)),
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxParallelItemLoads)

	for i, o := range b.Orders() {
		response.Orders[i] = BillOrderResponse{
			ID:          o.ID(),
			Status:      o.Status().String(),
			Total:       o.Total().Decimal(),
			CreatedAt:   o.CreatedAt(),
			Cancellable: bill.CanCancelOrder(o),
		}

		g.Go(func() error {
			items, itemsErr := loadOrderItems(gctx, h.db, o.ID())
			if itemsErr != nil {
				return itemsErr
			}
			response.Orders[i].Items = items
			return nil
		})
	}

	if err = g.Wait(); err != nil {
		return GetBillQueryResponse{}, err
	}

	return response, nil
}

func (h GetBillQueryHandler) loadHeader(ctx context.Context, code kernel.BillCode) (bill.Header, error) {
	var row struct {
		TableNumber int
		CreatedAt   time.Time
	}

	err := h.db.WithContext(ctx).Raw(`
		SELECT table_number, created_at
		FROM bills
		WHERE code = ?
	`, code.String()).Row().Scan(&row.TableNumber, &row.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return bill.Header{}, bill.NotFound(code)
	}
	if err != nil {
		return bill.Header{}, err
	}

	return bill.Header{Code: code, TableNumber: row.TableNumber, CreatedAt: row.CreatedAt}, nil
}

func (h GetBillQueryHandler) loadOrders(ctx context.Context, code kernel.BillCode) ([]*order.Order, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, table_number, status, total_price, created_at
		FROM orders
		WHERE order_code = ?
		ORDER BY created_at, id
	`, code.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]*order.Order, 0)
	for rows.Next() {
		var (
			id          int64
			tableNumber int
			status      string
			total       decimal.Decimal
			createdAt   time.Time
		)
		if err = rows.Scan(&id, &tableNumber, &status, &total, &createdAt); err != nil {
			return nil, err
		}

		money, moneyErr := kernel.NewMoney(total)
		if moneyErr != nil {
			return nil, moneyErr
		}

		o, restoreErr := order.RestoreOrder(order.Params{
			ID:          id,
			Code:        code,
			TableNumber: tableNumber,
			Status:      order.Status(status),
			Total:       money,
			CreatedAt:   createdAt,
		})
		if restoreErr != nil {
			return nil, restoreErr
		}
		orders = append(orders, o)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
