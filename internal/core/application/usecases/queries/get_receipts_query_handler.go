package queries

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type GetReceiptsQueryHandler struct {
	db *gorm.DB
}

func NewGetReceiptsQueryHandler(db *gorm.DB) GetReceiptsQueryHandler {
	return GetReceiptsQueryHandler{db: db}
}

// Handle runs three flat queries (receipts, archived orders, archived lines)
// and nests them in memory, newest receipt first.
func (h GetReceiptsQueryHandler) Handle(ctx context.Context, query GetReceiptsQuery) ([]GetReceiptsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	db := h.db.WithContext(ctx)

	receipts, err := h.loadReceipts(db)
	if err != nil {
		return nil, err
	}
	if len(receipts) == 0 {
		return receipts, nil
	}

	items, err := h.loadItems(db)
	if err != nil {
		return nil, err
	}

	ordersByCode, err := h.loadOrders(db, items)
	if err != nil {
		return nil, err
	}

	for i := range receipts {
		receipts[i].Orders = ordersByCode[receipts[i].Code]
		if receipts[i].Orders == nil {
			receipts[i].Orders = make([]ArchivedOrderResponse, 0)
		}
	}

	return receipts, nil
}

func (h GetReceiptsQueryHandler) loadReceipts(db *gorm.DB) ([]GetReceiptsQueryResponse, error) {
	rows, err := db.Raw(`
		SELECT code, created_at
		FROM receipts
		ORDER BY created_at DESC, code
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	receipts := make([]GetReceiptsQueryResponse, 0)
	for rows.Next() {
		var r GetReceiptsQueryResponse
		if err = rows.Scan(&r.Code, &r.IssuedAt); err != nil {
			return nil, err
		}
		receipts = append(receipts, r)
	}

	return receipts, rows.Err()
}

func (h GetReceiptsQueryHandler) loadOrders(
	db *gorm.DB,
	items map[uuid.UUID][]ArchivedItemResponse,
) (map[string][]ArchivedOrderResponse, error) {
	rows, err := db.Raw(`
		SELECT ao.id, ao.source_order_id, ao.order_code, ao.table_number, ao.status,
			ao.total_price, ao.ordered_at, ao.archived_at
		FROM archived_orders ao
		JOIN receipts r ON r.code = ao.order_code
		ORDER BY ao.ordered_at DESC, ao.source_order_id DESC
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	byCode := make(map[string][]ArchivedOrderResponse)
	for rows.Next() {
		var (
			o    ArchivedOrderResponse
			id   uuid.UUID
			code string
		)
		if err = rows.Scan(
			&id,
			&o.SourceOrderID,
			&code,
			&o.TableNumber,
			&o.Status,
			&o.Total,
			&o.OrderedAt,
			&o.ArchivedAt,
		); err != nil {
			return nil, err
		}

		o.ID = id.String()
		o.Items = items[id]
		if o.Items == nil {
			o.Items = make([]ArchivedItemResponse, 0)
		}
		byCode[code] = append(byCode[code], o)
	}

	return byCode, rows.Err()
}

func (h GetReceiptsQueryHandler) loadItems(db *gorm.DB) (map[uuid.UUID][]ArchivedItemResponse, error) {
	rows, err := db.Raw(`
		SELECT archived_order_id, menu_id, menu_name, quantity, price,
			COALESCE(note, ''), COALESCE(special_request, '')
		FROM archived_order_items
		ORDER BY id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	byOrder := make(map[uuid.UUID][]ArchivedItemResponse)
	for rows.Next() {
		var (
			item    ArchivedItemResponse
			orderID uuid.UUID
		)
		if err = rows.Scan(
			&orderID,
			&item.MenuID,
			&item.MenuName,
			&item.Quantity,
			&item.Price,
			&item.Note,
			&item.SpecialRequest,
		); err != nil {
			return nil, err
		}
		item.Subtotal = item.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
		byOrder[orderID] = append(byOrder[orderID], item)
	}

	return byOrder, rows.Err()
}
