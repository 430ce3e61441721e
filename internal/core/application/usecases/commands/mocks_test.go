package commands_test

import (
	"context"
	"testing"
	"time"

	"tableorder/internal/core/application/usecases/commands"
	"tableorder/internal/core/domain/model/archive"
	"tableorder/internal/core/domain/model/bill"
	"tableorder/internal/core/domain/model/kernel"
	"tableorder/internal/core/domain/model/order"
	"tableorder/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Get(ctx context.Context, id int64) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) UpdateStatus(ctx context.Context, o *order.Order, expected order.Status) error {
	args := m.Called(ctx, o, expected)
	return args.Error(0)
}

func (m *MockOrderRepository) CancelPendingByBill(ctx context.Context, code kernel.BillCode) ([]int64, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}

func (m *MockOrderRepository) ListCompletedUnarchived(ctx context.Context, limit int) ([]*order.Order, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockBillRepository struct{ mock.Mock }

func (m *MockBillRepository) Get(ctx context.Context, code kernel.BillCode) (*bill.Bill, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*bill.Bill), args.Error(1)
}

type MockArchiveRepository struct{ mock.Mock }

func (m *MockArchiveRepository) Add(ctx context.Context, a *archive.ArchivedOrder) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockArchiveRepository) FindIDForOrder(ctx context.Context, sourceOrderID int64) (*kernel.UUID, error) {
	args := m.Called(ctx, sourceOrderID)
	found, _ := args.Get(0).(*kernel.UUID)
	return found, args.Error(1)
}

func (m *MockArchiveRepository) AddReceiptIfAbsent(ctx context.Context, r *archive.Receipt) (bool, error) {
	args := m.Called(ctx, r)
	return args.Bool(0), args.Error(1)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) BillRepository() ports.BillRepository {
	args := m.Called()
	return args.Get(0).(ports.BillRepository)
}

func (m *MockUoW) ArchiveRepository() ports.ArchiveRepository {
	args := m.Called()
	return args.Get(0).(ports.ArchiveRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockArchiveUoWFactory struct{ mock.Mock }

func (m *MockArchiveUoWFactory) Create() commands.ArchiveUoW {
	args := m.Called()
	return args.Get(0).(commands.ArchiveUoW)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockPublisher struct{ mock.Mock }

func (m *MockPublisher) Publish(events ...order.StatusChanged) {
	m.Called(events)
}

func billCode(t *testing.T, code string) kernel.BillCode {
	t.Helper()
	c, err := kernel.NewBillCode(code)
	require.NoError(t, err)
	return c
}

func newOrder(t *testing.T, id int64, code string, status order.Status) *order.Order {
	t.Helper()
	price, err := kernel.MoneyFromString("40")
	require.NoError(t, err)
	total, err := kernel.MoneyFromString("80")
	require.NoError(t, err)
	item, err := order.NewItem(order.ItemParams{ID: id * 10, MenuID: 1, MenuName: "Som Tam", Quantity: 2, Price: price})
	require.NoError(t, err)

	o, err := order.RestoreOrder(order.Params{
		ID:          id,
		Code:        billCode(t, code),
		TableNumber: 5,
		Status:      status,
		Total:       total,
		CreatedAt:   time.Now(),
		Items:       []*order.Item{item},
	})
	require.NoError(t, err)
	return o
}

func newBill(t *testing.T, code string, orders ...*order.Order) *bill.Bill {
	t.Helper()
	b, err := bill.New(bill.Header{Code: billCode(t, code), TableNumber: 5, CreatedAt: time.Now()}, orders)
	require.NoError(t, err)
	return b
}
