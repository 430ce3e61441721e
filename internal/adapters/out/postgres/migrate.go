package postgres

import (
	"tableorder/internal/adapters/out/postgres/archiverepo"
	"tableorder/internal/adapters/out/postgres/orderrepo"

	"gorm.io/gorm"
)

// Models lists every table of the service in dependency order.
func Models() []any {
	return []any{
		&orderrepo.BillDTO{},
		&orderrepo.MenuDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
		&archiverepo.ArchivedOrderDTO{},
		&archiverepo.ArchivedOrderItemDTO{},
		&archiverepo.ReceiptDTO{},
	}
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}
