package queries

import (
	"context"

	"tableorder/internal/core/domain/model/order"

	"gorm.io/gorm"
)

type GetOrderItemsQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderItemsQueryHandler(db *gorm.DB) GetOrderItemsQueryHandler {
	return GetOrderItemsQueryHandler{db: db}
}

// Handle returns the order's lines. An order without lines is reported as not
// found: every placed order has at least one.
func (h GetOrderItemsQueryHandler) Handle(ctx context.Context, query GetOrderItemsQuery) ([]ItemResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	items, err := loadOrderItems(ctx, h.db, query.OrderID())
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, order.NotFound(query.OrderID())
	}

	return items, nil
}
