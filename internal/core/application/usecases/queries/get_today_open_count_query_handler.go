package queries

import (
	"context"

	"tableorder/internal/core/domain/model/order"

	"gorm.io/gorm"
)

type GetTodayOpenCountQueryHandler struct {
	db *gorm.DB
}

func NewGetTodayOpenCountQueryHandler(db *gorm.DB) GetTodayOpenCountQueryHandler {
	return GetTodayOpenCountQueryHandler{db: db}
}

func (h GetTodayOpenCountQueryHandler) Handle(ctx context.Context, query GetTodayOpenCountQuery) (int64, error) {
	if err := query.Validate(); err != nil {
		return 0, err
	}

	var count int64
	err := h.db.WithContext(ctx).Raw(`
		SELECT COUNT(*)
		FROM orders
		WHERE created_at >= ? AND created_at < ?
			AND status NOT IN (?, ?)
	`, query.Day().Start(), query.Day().End(), order.Completed.String(), order.Cancelled.String()).Row().Scan(&count)
	if err != nil {
		return 0, err
	}

	return count, nil
}
