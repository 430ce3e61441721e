// Package archiverepo persists archived orders and receipts. Rows here are
// append-only.
package archiverepo

import (
	"time"

	"tableorder/internal/core/domain/model/archive"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ArchivedOrderDTO struct {
	ID            uuid.UUID              `gorm:"type:uuid;primaryKey"`
	SourceOrderID int64                  `gorm:"not null;uniqueIndex"`
	OrderCode     string                 `gorm:"type:varchar(64);not null;index"`
	TableNumber   int                    `gorm:"not null"`
	Status        string                 `gorm:"type:varchar(16);not null"`
	TotalPrice    decimal.Decimal        `gorm:"type:numeric(10,2);not null"`
	OrderedAt     time.Time              `gorm:"not null"`
	ArchivedAt    time.Time              `gorm:"not null"`
	Items         []ArchivedOrderItemDTO `gorm:"foreignKey:ArchivedOrderID;constraint:OnDelete:RESTRICT"`
}

func (ArchivedOrderDTO) TableName() string {
	return "archived_orders"
}

type ArchivedOrderItemDTO struct {
	ID              int64           `gorm:"primaryKey"`
	ArchivedOrderID uuid.UUID       `gorm:"type:uuid;not null;index"`
	MenuID          int64           `gorm:"not null"`
	MenuName        string          `gorm:"type:varchar(255);not null"`
	Quantity        int             `gorm:"not null"`
	Price           decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	Note            string          `gorm:"type:text"`
	SpecialRequest  string          `gorm:"type:text"`
}

func (ArchivedOrderItemDTO) TableName() string {
	return "archived_order_items"
}

// ReceiptDTO has the bill code as primary key, which is what makes
// "one receipt per bill" hold under concurrent completions.
type ReceiptDTO struct {
	Code            string    `gorm:"type:varchar(64);primaryKey"`
	ArchivedOrderID uuid.UUID `gorm:"type:uuid;not null"`
	CreatedAt       time.Time `gorm:"not null"`
}

func (ReceiptDTO) TableName() string {
	return "receipts"
}

func fromDomain(a *archive.ArchivedOrder) ArchivedOrderDTO {
	id := a.ID().Bytes()

	items := make([]ArchivedOrderItemDTO, 0, len(a.Items()))
	for _, item := range a.Items() {
		items = append(items, ArchivedOrderItemDTO{
			ArchivedOrderID: id,
			MenuID:          item.MenuID,
			MenuName:        item.MenuName,
			Quantity:        item.Quantity,
			Price:           item.Price.Decimal(),
			Note:            item.Note,
			SpecialRequest:  item.SpecialRequest,
		})
	}

	return ArchivedOrderDTO{
		ID:            id,
		SourceOrderID: a.SourceOrderID(),
		OrderCode:     a.Code().String(),
		TableNumber:   a.TableNumber(),
		Status:        a.Status().String(),
		TotalPrice:    a.Total().Decimal(),
		OrderedAt:     a.OrderedAt(),
		ArchivedAt:    a.ArchivedAt(),
		Items:         items,
	}
}

func receiptFromDomain(r *archive.Receipt) ReceiptDTO {
	return ReceiptDTO{
		Code:            r.Code().String(),
		ArchivedOrderID: r.ArchivedOrderID().Bytes(),
		CreatedAt:       r.IssuedAt(),
	}
}
