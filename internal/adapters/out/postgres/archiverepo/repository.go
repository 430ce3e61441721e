package archiverepo

import (
	"context"

	"tableorder/internal/core/domain/model/archive"
	"tableorder/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormArchiveRepository implements ports.ArchiveRepository using GORM.
type GormArchiveRepository struct {
	db *gorm.DB
}

func NewGormArchiveRepository(db *gorm.DB) *GormArchiveRepository {
	return &GormArchiveRepository{db: db}
}

// Add inserts the archived order and, through the association, its lines.
// A second archive of the same source order violates the unique index.
func (r *GormArchiveRepository) Add(ctx context.Context, archived *archive.ArchivedOrder) error {
	if err := archived.Validate(); err != nil {
		return err
	}

	dto := fromDomain(archived)
	return r.db.WithContext(ctx).Create(&dto).Error
}

func (r *GormArchiveRepository) FindIDForOrder(ctx context.Context, sourceOrderID int64) (*kernel.UUID, error) {
	var ids []uuid.UUID
	err := r.db.WithContext(ctx).
		Model(&ArchivedOrderDTO{}).
		Where("source_order_id = ?", sourceOrderID).
		Limit(1).
		Pluck("id", &ids).Error
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return nil, nil
	}

	id, err := kernel.UUIDFromBytes(ids[0][:])
	if err != nil {
		return nil, err
	}
	return &id, nil
}

// AddReceiptIfAbsent relies on the primary key of receipts: the first insert
// for a bill code wins, later ones are dropped by ON CONFLICT DO NOTHING.
func (r *GormArchiveRepository) AddReceiptIfAbsent(ctx context.Context, receipt *archive.Receipt) (bool, error) {
	if err := receipt.Validate(); err != nil {
		return false, err
	}

	dto := receiptFromDomain(receipt)
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "code"}}, DoNothing: true}).
		Create(&dto)
	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected == 1, nil
}
