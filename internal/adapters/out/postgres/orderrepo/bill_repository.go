package orderrepo

import (
	"context"
	"errors"

	"tableorder/internal/core/domain/model/bill"
	"tableorder/internal/core/domain/model/kernel"
	"tableorder/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GormBillRepository implements ports.BillRepository over the bills and
// orders tables.
type GormBillRepository struct {
	db *gorm.DB
}

func NewGormBillRepository(db *gorm.DB) *GormBillRepository {
	return &GormBillRepository{db: db}
}

func (r *GormBillRepository) Get(ctx context.Context, code kernel.BillCode) (*bill.Bill, error) {
	if err := code.Validate(); err != nil {
		return nil, err
	}

	db := r.db.WithContext(ctx)

	var headerDTO BillDTO
	if err := db.First(&headerDTO, "code = ?", code.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, bill.NotFound(code)
		}
		return nil, err
	}

	header, err := headerToDomain(headerDTO)
	if err != nil {
		return nil, err
	}

	var dtos []OrderDTO
	if err = withItems(db).Where("order_code = ?", code.String()).Order("created_at, id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, convErr := toDomain(dto)
		if convErr != nil {
			return nil, convErr
		}
		orders = append(orders, o)
	}

	return bill.New(header, orders)
}
