package queries

import (
	"context"

	"tableorder/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type GetTodayRevenueQueryHandler struct {
	db *gorm.DB
}

func NewGetTodayRevenueQueryHandler(db *gorm.DB) GetTodayRevenueQueryHandler {
	return GetTodayRevenueQueryHandler{db: db}
}

func (h GetTodayRevenueQueryHandler) Handle(
	ctx context.Context,
	query GetTodayRevenueQuery,
) (GetTodayRevenueQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetTodayRevenueQueryResponse{}, err
	}

	var (
		revenue decimal.Decimal
		count   int64
	)
	err := h.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(total_price), 0), COUNT(*)
		FROM orders
		WHERE created_at >= ? AND created_at < ?
			AND status = ?
	`, query.Day().Start(), query.Day().End(), order.Completed.String()).Row().Scan(&revenue, &count)
	if err != nil {
		return GetTodayRevenueQueryResponse{}, err
	}

	return GetTodayRevenueQueryResponse{
		TotalRevenue: revenue,
		TotalOrders:  count,
		Date:         query.Day().Date(),
	}, nil
}
