package orderrepo

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"tableorder/internal/core/domain/model/kernel"
	"tableorder/internal/core/domain/model/order"
	"tableorder/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db *gorm.DB
}

func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// withItems preloads the order lines, in insertion order, with their menu rows.
func withItems(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Items", func(tx *gorm.DB) *gorm.DB { return tx.Order("order_items.id") }).
		Preload("Items.Menu")
}

// Get retrieves an order with its lines.
func (r *GormOrderRepository) Get(ctx context.Context, id int64) (*order.Order, error) {
	if err := order.ValidateID(id); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := withItems(r.db.WithContext(ctx)).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, order.NotFound(id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// UpdateStatus is a compare-and-set on the status column.
func (r *GormOrderRepository) UpdateStatus(ctx context.Context, aggregate *order.Order, expected order.Status) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	db := r.db.WithContext(ctx)

	result := db.Model(&OrderDTO{}).
		Where("id = ? AND status = ?", aggregate.ID(), expected.String()).
		Update("status", aggregate.Status().String())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected > 0 {
		return nil
	}

	var count int64
	if err := db.Model(&OrderDTO{}).Where("id = ?", aggregate.ID()).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return order.NotFound(aggregate.ID())
	}

	return errs.NewObjectConflictErrorWithCause(
		"order", aggregate.ID(),
		fmt.Errorf("%w: status is no longer %s", order.ErrTransitionNotAllowed, expected),
	)
}

// CancelPendingByBill cancels in one UPDATE ... RETURNING so each order is
// cancelled at most once across concurrent callers.
func (r *GormOrderRepository) CancelPendingByBill(ctx context.Context, code kernel.BillCode) ([]int64, error) {
	if err := code.Validate(); err != nil {
		return nil, err
	}

	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Model(&dtos).
		Clauses(clause.Returning{Columns: []clause.Column{{Name: "id"}}}).
		Where("order_code = ? AND status = ?", code.String(), order.Pending.String()).
		Update("status", order.Cancelled.String()).Error
	if err != nil {
		return nil, err
	}

	ids := make([]int64, 0, len(dtos))
	for _, dto := range dtos {
		ids = append(ids, dto.ID)
	}
	slices.Sort(ids)

	return ids, nil
}

// ListCompletedUnarchived finds completed orders with no archived_orders row.
func (r *GormOrderRepository) ListCompletedUnarchived(ctx context.Context, limit int) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := withItems(r.db.WithContext(ctx)).
		Where("status = ?", order.Completed.String()).
		Where("NOT EXISTS (SELECT 1 FROM archived_orders ao WHERE ao.source_order_id = orders.id)").
		Order("id").
		Limit(limit).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}
