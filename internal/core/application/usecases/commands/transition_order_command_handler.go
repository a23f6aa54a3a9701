package commands

import (
	"context"
)

// TransitionOrderCommandHandler handles manual order status transitions.
// Shipment-driven transitions (Shipped, Delivered, back to Pending) go
// through the dispatcher handlers instead; this handler serves the direct
// status endpoint and relies on the aggregate to reject illegal moves.
type TransitionOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	locker     EntityLocker
}

// NewTransitionOrderCommandHandler creates a handler for order transitions.
func NewTransitionOrderCommandHandler(
	uowFactory OrderUoWFactory,
	locker EntityLocker,
) TransitionOrderCommandHandler {
	return TransitionOrderCommandHandler{
		uowFactory: uowFactory,
		locker:     locker,
	}
}

// Handle processes the transition command. The order key is locked for the
// duration so concurrent transitions on the same order are applied one at a
// time against fresh state.
func (h *TransitionOrderCommandHandler) Handle(ctx context.Context, cmd TransitionOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	unlock := h.locker.Lock(cmd.OrderID().String())
	defer unlock()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = aggregate.TransitionTo(cmd.Target()); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
