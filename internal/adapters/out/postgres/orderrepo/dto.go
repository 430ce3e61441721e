// Package orderrepo maps the active side of the store (bills, menus, orders
// and their lines) between gorm rows and the domain model.
package orderrepo

import (
	"time"

	"tableorder/internal/core/domain/model/bill"
	"tableorder/internal/core/domain/model/kernel"
	"tableorder/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// BillDTO is the shared-bill header. Rows are written by the ordering front
// end when a table session starts; this service only reads them.
type BillDTO struct {
	Code        string    `gorm:"type:varchar(64);primaryKey"`
	TableNumber int       `gorm:"not null"`
	CreatedAt   time.Time `gorm:"not null"`
}

func (BillDTO) TableName() string {
	return "bills"
}

// MenuDTO is read-only reference data used for line item names.
type MenuDTO struct {
	ID   int64  `gorm:"primaryKey"`
	Name string `gorm:"type:varchar(255);not null"`
}

func (MenuDTO) TableName() string {
	return "menus"
}

// OrderDTO rows are never deleted, archived or not.
type OrderDTO struct {
	ID          int64           `gorm:"primaryKey"`
	OrderCode   string          `gorm:"type:varchar(64);not null;index"`
	TableNumber int             `gorm:"not null"`
	Status      string          `gorm:"type:varchar(16);not null;index"`
	TotalPrice  decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	CreatedAt   time.Time       `gorm:"not null;index"`
	Items       []OrderItemDTO  `gorm:"foreignKey:OrderID;constraint:OnDelete:RESTRICT"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

type OrderItemDTO struct {
	ID             int64           `gorm:"primaryKey"`
	OrderID        int64           `gorm:"not null;index"`
	MenuID         int64           `gorm:"not null"`
	Menu           *MenuDTO        `gorm:"foreignKey:MenuID"`
	Quantity       int             `gorm:"not null"`
	Price          decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	Note           string          `gorm:"type:text"`
	SpecialRequest string          `gorm:"type:text"`
}

func (OrderItemDTO) TableName() string {
	return "order_items"
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	code, err := kernel.NewBillCode(dto.OrderCode)
	if err != nil {
		return nil, err
	}

	total, err := kernel.NewMoney(dto.TotalPrice)
	if err != nil {
		return nil, err
	}

	items := make([]*order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(order.Params{
		ID:          dto.ID,
		Code:        code,
		TableNumber: dto.TableNumber,
		Status:      order.Status(dto.Status),
		Total:       total,
		CreatedAt:   dto.CreatedAt,
		Items:       items,
	})
}

func itemToDomain(dto OrderItemDTO) (*order.Item, error) {
	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return nil, err
	}

	var menuName string
	if dto.Menu != nil {
		menuName = dto.Menu.Name
	}

	return order.NewItem(order.ItemParams{
		ID:             dto.ID,
		MenuID:         dto.MenuID,
		MenuName:       menuName,
		Quantity:       dto.Quantity,
		Price:          price,
		Note:           dto.Note,
		SpecialRequest: dto.SpecialRequest,
	})
}

func headerToDomain(dto BillDTO) (bill.Header, error) {
	code, err := kernel.NewBillCode(dto.Code)
	if err != nil {
		return bill.Header{}, err
	}
	return bill.Header{Code: code, TableNumber: dto.TableNumber, CreatedAt: dto.CreatedAt}, nil
}
