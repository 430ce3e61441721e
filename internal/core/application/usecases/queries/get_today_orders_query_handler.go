package queries

import (
	"context"

	"gorm.io/gorm"
)

type GetTodayOrdersQueryHandler struct {
	db *gorm.DB
}

func NewGetTodayOrdersQueryHandler(db *gorm.DB) GetTodayOrdersQueryHandler {
	return GetTodayOrdersQueryHandler{db: db}
}

// Handle returns the day's orders, oldest first.
func (h GetTodayOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetTodayOrdersQuery,
) ([]GetTodayOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, order_code, table_number, status, total_price, created_at
		FROM orders
		WHERE created_at >= ? AND created_at < ?
		ORDER BY created_at, id
	`, query.Day().Start(), query.Day().End()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]GetTodayOrdersQueryResponse, 0)
	for rows.Next() {
		var o GetTodayOrdersQueryResponse
		if err = rows.Scan(&o.ID, &o.BillCode, &o.TableNumber, &o.Status, &o.Total, &o.CreatedAt); err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
