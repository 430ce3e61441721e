// Package pgtest starts a throwaway PostgreSQL for integration suites and
// seeds the rows that the ordering front end would normally write.
package pgtest

import (
	"context"
	"time"

	postgres_adapter "tableorder/internal/adapters/out/postgres"
	"tableorder/internal/adapters/out/postgres/orderrepo"
	"tableorder/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type Database struct {
	Container *postgres.PostgresContainer
	DB        *gorm.DB
}

// Start runs postgres:15-alpine and migrates the full schema.
func Start(ctx context.Context) (*Database, error) {
	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		return nil, err
	}

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, err
	}

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, err
	}

	if err = postgres_adapter.Migrate(db); err != nil {
		_ = container.Terminate(ctx)
		return nil, err
	}

	return &Database{Container: container, DB: db}, nil
}

func (d *Database) Terminate(ctx context.Context) error {
	if d == nil || d.Container == nil {
		return nil
	}
	return d.Container.Terminate(ctx)
}

// Truncate empties every table and resets the id sequences.
func (d *Database) Truncate() error {
	return d.DB.Exec(`TRUNCATE TABLE receipts, archived_order_items, archived_orders,
		order_items, orders, menus, bills RESTART IDENTITY CASCADE`).Error
}

type ItemSeed struct {
	MenuID         int64
	Quantity       int
	Price          string
	Note           string
	SpecialRequest string
}

type OrderSeed struct {
	ID          int64
	Code        string
	TableNumber int
	Status      order.Status
	Total       string
	CreatedAt   time.Time
	Items       []ItemSeed
}

func (d *Database) SeedMenu(id int64, name string) error {
	return d.DB.Create(&orderrepo.MenuDTO{ID: id, Name: name}).Error
}

func (d *Database) SeedBill(code string, tableNumber int, createdAt time.Time) error {
	return d.DB.Create(&orderrepo.BillDTO{Code: code, TableNumber: tableNumber, CreatedAt: createdAt}).Error
}

// SeedOrder inserts an order with its lines. Zero CreatedAt means now.
func (d *Database) SeedOrder(seed OrderSeed) error {
	createdAt := seed.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}
	tableNumber := seed.TableNumber
	if tableNumber == 0 {
		tableNumber = 1
	}

	items := make([]orderrepo.OrderItemDTO, 0, len(seed.Items))
	for _, item := range seed.Items {
		items = append(items, orderrepo.OrderItemDTO{
			MenuID:         item.MenuID,
			Quantity:       item.Quantity,
			Price:          decimal.RequireFromString(item.Price),
			Note:           item.Note,
			SpecialRequest: item.SpecialRequest,
		})
	}

	return d.DB.Create(&orderrepo.OrderDTO{
		ID:          seed.ID,
		OrderCode:   seed.Code,
		TableNumber: tableNumber,
		Status:      seed.Status.String(),
		TotalPrice:  decimal.RequireFromString(seed.Total),
		CreatedAt:   createdAt,
		Items:       items,
	}).Error
}

// OrderStatus reads the stored status of one order.
func (d *Database) OrderStatus(id int64) (order.Status, error) {
	var dto orderrepo.OrderDTO
	if err := d.DB.First(&dto, "id = ?", id).Error; err != nil {
		return "", err
	}
	return order.Status(dto.Status), nil
}

// Count returns the number of rows in table.
func (d *Database) Count(table string) (int64, error) {
	var count int64
	err := d.DB.Table(table).Count(&count).Error
	return count, err
}
