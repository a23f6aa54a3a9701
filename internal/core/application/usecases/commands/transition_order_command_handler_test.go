package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/pkg/locks"
)

func newTransitionOrderHandler(uow *MockUoW) commands.TransitionOrderCommandHandler {
	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow)
	return commands.NewTransitionOrderCommandHandler(factory, locks.NewKeyedMutex())
}

func TestTransitionOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	uow.On("OrderRepository").Return(repo)
	uow.On("Begin", mock.Anything).Return(nil)
	uow.On("Rollback", mock.Anything).Return(nil)
	uow.On("Commit", mock.Anything).Return(nil).Once()

	ord := pendingOrder(t)
	repo.On("Get", mock.Anything, ord.ID()).Return(ord, nil).Once()
	repo.On("Update", mock.Anything, ord).Return(nil).Once()

	cmd, err := commands.NewTransitionOrderCommand(ord.ID(), order.Processing)
	require.NoError(t, err)

	h := newTransitionOrderHandler(uow)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Processing, ord.Status())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestTransitionOrderCommandHandler_Handle_Cancel(t *testing.T) {
	ctx := t.Context()
	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	uow.On("OrderRepository").Return(repo)
	uow.On("Begin", mock.Anything).Return(nil)
	uow.On("Rollback", mock.Anything).Return(nil)
	uow.On("Commit", mock.Anything).Return(nil).Once()

	ord := orderInStatus(t, order.Shipped)
	repo.On("Get", mock.Anything, ord.ID()).Return(ord, nil).Once()
	repo.On("Update", mock.Anything, ord).Return(nil).Once()

	cmd, err := commands.NewTransitionOrderCommand(ord.ID(), order.Cancelled)
	require.NoError(t, err)

	h := newTransitionOrderHandler(uow)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Cancelled, ord.Status())
}

func TestTransitionOrderCommandHandler_Handle_SkippedStage(t *testing.T) {
	ctx := t.Context()
	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	uow.On("OrderRepository").Return(repo)
	uow.On("Begin", mock.Anything).Return(nil)
	uow.On("Rollback", mock.Anything).Return(nil)

	ord := pendingOrder(t)
	repo.On("Get", mock.Anything, ord.ID()).Return(ord, nil).Once()

	cmd, err := commands.NewTransitionOrderCommand(ord.ID(), order.Delivered)
	require.NoError(t, err)

	h := newTransitionOrderHandler(uow)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, order.ErrInvalidTransition)
	assert.Equal(t, order.Pending, ord.Status())
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}
