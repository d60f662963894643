package commands_test

import (
	"testing"

	"orderflow/internal/core/application/usecases/commands"
	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func pendingOrder(t *testing.T) *order.Order {
	t.Helper()
	aggregate := storedOrder(t, 1500)
	require.NoError(t, aggregate.SubmitForApproval("alice"))
	require.Equal(t, order.StatusPendingApproval, aggregate.Status())
	return aggregate
}

func TestProcessApprovalCommandHandler_Handle_FirstLevelApproved(t *testing.T) {
	ctx := t.Context()
	existing := pendingOrder(t)
	cmd, _ := commands.NewProcessApprovalCommand(existing.ID(), order.LevelFirst, order.ApprovalApproved, "carol", "")

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, existing.ID()).Return(existing, nil).Once(),
		repo.On("Update", mock.Anything, existing).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewProcessApprovalCommandHandler(factory)
	aggregate, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, order.StatusPendingApproval, aggregate.Status())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestProcessApprovalCommandHandler_Handle_SecondLevelCompletes(t *testing.T) {
	ctx := t.Context()
	existing := pendingOrder(t)
	require.NoError(t, existing.ProcessApproval(order.LevelFirst, order.ApprovalApproved, "carol", ""))
	cmd, _ := commands.NewProcessApprovalCommand(existing.ID(), order.LevelSecond, order.ApprovalApproved, "dave", "")

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, existing.ID()).Return(existing, nil).Once(),
		repo.On("Update", mock.Anything, existing).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewProcessApprovalCommandHandler(factory)
	aggregate, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, order.StatusApproved, aggregate.Status())
	uow.AssertExpectations(t)
}

func TestProcessApprovalCommandHandler_Handle_Rejection(t *testing.T) {
	ctx := t.Context()
	existing := pendingOrder(t)
	cmd, _ := commands.NewProcessApprovalCommand(existing.ID(), order.LevelFirst, order.ApprovalRejected, "carol", "too expensive")

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, existing.ID()).Return(existing, nil).Once(),
		repo.On("Update", mock.Anything, existing).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewProcessApprovalCommandHandler(factory)
	aggregate, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, order.StatusRejected, aggregate.Status())
	uow.AssertExpectations(t)
}

func TestProcessApprovalCommandHandler_Handle_NotPendingApproval(t *testing.T) {
	ctx := t.Context()
	existing := storedOrder(t, 1500) // still draft
	cmd, _ := commands.NewProcessApprovalCommand(existing.ID(), order.LevelFirst, order.ApprovalApproved, "carol", "")

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, existing.ID()).Return(existing, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewProcessApprovalCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrInvalidState)
	uow.AssertExpectations(t)
}

func TestProcessApprovalCommandHandler_Handle_LevelAlreadyDecided(t *testing.T) {
	ctx := t.Context()
	existing := pendingOrder(t)
	require.NoError(t, existing.ProcessApproval(order.LevelFirst, order.ApprovalApproved, "carol", ""))
	cmd, _ := commands.NewProcessApprovalCommand(existing.ID(), order.LevelFirst, order.ApprovalApproved, "dave", "")

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, existing.ID()).Return(existing, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewProcessApprovalCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertExpectations(t)
}

func TestProcessApprovalCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	var cmd commands.ProcessApprovalCommand
	factory := new(MockOrderUoWFactory)
	h := commands.NewProcessApprovalCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
}
