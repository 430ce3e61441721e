package commands_test

import (
	"testing"

	"tableorder/internal/core/application/usecases/commands"
	"tableorder/internal/core/domain/model/kernel"
	"tableorder/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestReconcileArchivesCommandHandler_Handle_ArchivesBacklog(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewReconcileArchivesCommand(50)
	require.NoError(t, err)

	backlog := []*order.Order{
		newOrder(t, 1, "B1", order.Completed),
		newOrder(t, 2, "B2", order.Completed),
	}

	orderRepo := new(MockOrderRepository)
	archiveRepo := new(MockArchiveRepository)
	uow := new(MockUoW)
	factory := new(MockArchiveUoWFactory)

	factory.On("Create").Return(uow).Once()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	orderRepo.On("ListCompletedUnarchived", ctx, 50).Return(backlog, nil).Once()
	uow.On("ArchiveRepository").Return(archiveRepo).Once()
	archiveRepo.On("FindIDForOrder", ctx, int64(1)).Return(nil, nil).Once()
	alreadyArchived := kernel.NewUUID()
	archiveRepo.On("FindIDForOrder", ctx, int64(2)).Return(&alreadyArchived, nil).Once()
	archiveRepo.On("Add", ctx, mock.Anything).Return(nil).Once()
	archiveRepo.On("AddReceiptIfAbsent", ctx, mock.Anything).Return(true, nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	handler := commands.NewReconcileArchivesCommandHandler(factory)
	archived, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, 1, archived)
	archiveRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestReconcileArchivesCommandHandler_Handle_NothingToDo(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewReconcileArchivesCommand(50)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	factory := new(MockArchiveUoWFactory)

	factory.On("Create").Return(uow).Once()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	orderRepo.On("ListCompletedUnarchived", ctx, 50).Return([]*order.Order{}, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	handler := commands.NewReconcileArchivesCommandHandler(factory)
	archived, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Zero(t, archived)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}
