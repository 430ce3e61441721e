// Package queries contains the read side. Handlers issue raw SQL through
// *gorm.DB and return flat response structs; they never load aggregates.
package queries

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ItemResponse is one order line with its menu name and derived subtotal.
type ItemResponse struct {
	ID             int64
	MenuID         int64
	MenuName       string
	Quantity       int
	Price          decimal.Decimal
	Subtotal       decimal.Decimal
	Note           string
	SpecialRequest string
}

// loadOrderItems reads the lines of one order. The menu join is a left join
// so a line whose menu row was removed still shows up, with an empty name.
func loadOrderItems(ctx context.Context, db *gorm.DB, orderID int64) ([]ItemResponse, error) {
	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			oi.id,
			oi.menu_id,
			COALESCE(m.name, ''),
			oi.quantity,
			oi.price,
			COALESCE(oi.note, ''),
			COALESCE(oi.special_request, '')
		FROM order_items oi
		LEFT JOIN menus m ON m.id = oi.menu_id
		WHERE oi.order_id = ?
		ORDER BY oi.id
	`, orderID).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]ItemResponse, 0)
	for rows.Next() {
		var item ItemResponse
		if err = rows.Scan(
			&item.ID,
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
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
