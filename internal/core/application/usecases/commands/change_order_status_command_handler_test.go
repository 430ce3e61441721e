package commands_test

import (
	"errors"
	"testing"

	"tableorder/internal/core/application/usecases/commands"
	"tableorder/internal/core/domain/model/kernel"
	"tableorder/internal/core/domain/model/order"
	"tableorder/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestChangeOrderStatusCommandHandler_Handle_ForwardTransition(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewChangeOrderStatusCommand(42, "ready")
	require.NoError(t, err)

	stored := newOrder(t, 42, "B1", order.Preparing)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	publisher := new(MockPublisher)
	factory := new(MockArchiveUoWFactory)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, int64(42)).Return(stored, nil).Once(),
		orderRepo.On("UpdateStatus", ctx, stored, order.Preparing).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		publisher.On("Publish", []order.StatusChanged{
			{OrderID: 42, Status: order.Ready, BillCode: billCode(t, "B1")},
		}).Return().Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewChangeOrderStatusCommandHandler(factory, publisher)
	result, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, int64(42), result.OrderID)
	assert.Equal(t, order.Ready, result.Status)
	assert.Nil(t, result.ArchivedOrderID)
	factory.AssertExpectations(t)
	uow.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestChangeOrderStatusCommandHandler_Handle_CompletionArchives(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewChangeOrderStatusCommand(10, "completed")
	require.NoError(t, err)

	stored := newOrder(t, 10, "B9", order.Ready)

	orderRepo := new(MockOrderRepository)
	archiveRepo := new(MockArchiveRepository)
	uow := new(MockUoW)
	publisher := new(MockPublisher)
	factory := new(MockArchiveUoWFactory)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, int64(10)).Return(stored, nil).Once(),
		orderRepo.On("UpdateStatus", ctx, stored, order.Ready).Return(nil).Once(),
		uow.On("ArchiveRepository").Return(archiveRepo).Once(),
		archiveRepo.On("FindIDForOrder", ctx, int64(10)).Return(nil, nil).Once(),
		archiveRepo.On("Add", ctx, mock.AnythingOfType("*archive.ArchivedOrder")).Return(nil).Once(),
		archiveRepo.On("AddReceiptIfAbsent", ctx, mock.AnythingOfType("*archive.Receipt")).Return(true, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		publisher.On("Publish", mock.Anything).Return().Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewChangeOrderStatusCommandHandler(factory, publisher)
	result, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Completed, result.Status)
	require.NotNil(t, result.ArchivedOrderID)
	assert.NoError(t, result.ArchivedOrderID.Validate())
	archiveRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestChangeOrderStatusCommandHandler_Handle_AlreadyArchived(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewChangeOrderStatusCommand(10, "completed")
	require.NoError(t, err)

	stored := newOrder(t, 10, "B9", order.Ready)
	existing := kernel.NewUUID()

	orderRepo := new(MockOrderRepository)
	archiveRepo := new(MockArchiveRepository)
	uow := new(MockUoW)
	publisher := new(MockPublisher)
	factory := new(MockArchiveUoWFactory)

	factory.On("Create").Return(uow).Once()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	orderRepo.On("Get", ctx, int64(10)).Return(stored, nil).Once()
	orderRepo.On("UpdateStatus", ctx, stored, order.Ready).Return(nil).Once()
	uow.On("ArchiveRepository").Return(archiveRepo).Once()
	archiveRepo.On("FindIDForOrder", ctx, int64(10)).Return(&existing, nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	publisher.On("Publish", mock.Anything).Return().Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	handler := commands.NewChangeOrderStatusCommandHandler(factory, publisher)
	result, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, result.ArchivedOrderID)
	assert.True(t, result.ArchivedOrderID.IsEqual(existing))
	archiveRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	archiveRepo.AssertNotCalled(t, "AddReceiptIfAbsent", mock.Anything, mock.Anything)
}

func TestChangeOrderStatusCommandHandler_Handle_TerminalOrder(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewChangeOrderStatusCommand(7, "preparing")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	publisher := new(MockPublisher)
	factory := new(MockArchiveUoWFactory)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, int64(7)).Return(newOrder(t, 7, "B1", order.Completed), nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewChangeOrderStatusCommandHandler(factory, publisher)
	_, err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectConflict)
	require.ErrorIs(t, err, order.ErrTransitionNotAllowed)
	orderRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	publisher.AssertNotCalled(t, "Publish", mock.Anything)
}

func TestChangeOrderStatusCommandHandler_Handle_CancelPendingOrder(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewChangeOrderStatusCommand(42, "cancelled")
	require.NoError(t, err)

	stored := newOrder(t, 42, "B1", order.Pending)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	publisher := new(MockPublisher)
	factory := new(MockArchiveUoWFactory)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, int64(42)).Return(stored, nil).Once(),
		orderRepo.On("UpdateStatus", ctx, stored, order.Pending).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		publisher.On("Publish", []order.StatusChanged{
			{OrderID: 42, Status: order.Cancelled, BillCode: billCode(t, "B1")},
		}).Return().Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewChangeOrderStatusCommandHandler(factory, publisher)
	result, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Cancelled, result.Status)
	assert.Nil(t, result.ArchivedOrderID)
	uow.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestChangeOrderStatusCommandHandler_Handle_CancelPreparingOrder(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewChangeOrderStatusCommand(42, "cancelled")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	publisher := new(MockPublisher)
	factory := new(MockArchiveUoWFactory)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, int64(42)).Return(newOrder(t, 42, "B1", order.Preparing), nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewChangeOrderStatusCommandHandler(factory, publisher)
	_, err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, order.ErrNotCancellable)
	require.ErrorIs(t, err, errs.ErrObjectConflict)
	assert.NotErrorIs(t, err, order.ErrTransitionNotAllowed)
	orderRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
	publisher.AssertNotCalled(t, "Publish", mock.Anything)
}

func TestChangeOrderStatusCommandHandler_Handle_CancelLostRace(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewChangeOrderStatusCommand(42, "cancelled")
	require.NoError(t, err)

	stored := newOrder(t, 42, "B1", order.Pending)
	lost := errs.NewObjectConflictErrorWithCause("order", int64(42), order.ErrTransitionNotAllowed)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	publisher := new(MockPublisher)
	factory := new(MockArchiveUoWFactory)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, int64(42)).Return(stored, nil).Once(),
		orderRepo.On("UpdateStatus", ctx, stored, order.Pending).Return(lost).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewChangeOrderStatusCommandHandler(factory, publisher)
	_, err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, order.ErrNotCancellable)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	publisher.AssertNotCalled(t, "Publish", mock.Anything)
}

func TestChangeOrderStatusCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewChangeOrderStatusCommand(404, "ready")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	publisher := new(MockPublisher)
	factory := new(MockArchiveUoWFactory)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, int64(404)).Return(nil, order.NotFound(404)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewChangeOrderStatusCommandHandler(factory, publisher)
	_, err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	require.ErrorIs(t, err, order.ErrOrderNotFound)
	publisher.AssertNotCalled(t, "Publish", mock.Anything)
}

func TestChangeOrderStatusCommandHandler_Handle_ArchiveFailureRollsBack(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewChangeOrderStatusCommand(10, "completed")
	require.NoError(t, err)

	stored := newOrder(t, 10, "B9", order.Ready)

	orderRepo := new(MockOrderRepository)
	archiveRepo := new(MockArchiveRepository)
	uow := new(MockUoW)
	publisher := new(MockPublisher)
	factory := new(MockArchiveUoWFactory)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, int64(10)).Return(stored, nil).Once(),
		orderRepo.On("UpdateStatus", ctx, stored, order.Ready).Return(nil).Once(),
		uow.On("ArchiveRepository").Return(archiveRepo).Once(),
		archiveRepo.On("FindIDForOrder", ctx, int64(10)).Return(nil, nil).Once(),
		archiveRepo.On("Add", ctx, mock.Anything).Return(errors.New("disk full")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewChangeOrderStatusCommandHandler(factory, publisher)
	_, err = handler.Handle(ctx, cmd)

	require.EqualError(t, err, "disk full")
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	publisher.AssertNotCalled(t, "Publish", mock.Anything)
	uow.AssertExpectations(t)
}

func TestChangeOrderStatusCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewChangeOrderStatusCommand(1, "ready")
	require.NoError(t, err)

	uow := new(MockUoW)
	factory := new(MockArchiveUoWFactory)

	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(errors.New("begin error")).Once(),
	)

	handler := commands.NewChangeOrderStatusCommandHandler(factory, new(MockPublisher))
	_, err = handler.Handle(ctx, cmd)

	require.EqualError(t, err, "begin error")
}

func TestChangeOrderStatusCommandHandler_Handle_ValidationError(t *testing.T) {
	factory := new(MockArchiveUoWFactory)
	handler := commands.NewChangeOrderStatusCommandHandler(factory, new(MockPublisher))

	_, err := handler.Handle(t.Context(), commands.ChangeOrderStatusCommand{})

	require.ErrorIs(t, err, commands.ErrChangeOrderStatusCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}
