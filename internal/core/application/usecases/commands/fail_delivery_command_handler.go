package commands

import (
	"context"
)

// FailDeliveryCommandHandler fails the delivery attempt in progress. While
// attempts remain the shipment stays in transit so the attempt can be
// retried; once the cap is exhausted the shipment is flagged Delayed with
// its driver and vehicle still claimed, awaiting an operator decision.
type FailDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
	locker     EntityLocker
}

// NewFailDeliveryCommandHandler creates a handler for delivery failures.
func NewFailDeliveryCommandHandler(
	uowFactory DeliveryUoWFactory,
	locker EntityLocker,
) FailDeliveryCommandHandler {
	return FailDeliveryCommandHandler{
		uowFactory: uowFactory,
		locker:     locker,
	}
}

// Handle processes the failure command.
func (h *FailDeliveryCommandHandler) Handle(ctx context.Context, cmd FailDeliveryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	unlockDelivery := h.locker.Lock(cmd.DeliveryID().String())
	defer unlockDelivery()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	dlv, err := uow.DeliveryRepository().Get(ctx, cmd.DeliveryID())
	if err != nil {
		return err
	}

	unlockShipment := h.locker.Lock(dlv.ShipmentID().String())
	defer unlockShipment()

	if err = dlv.Fail(cmd.Reason()); err != nil {
		return err
	}
	if err = uow.DeliveryRepository().Update(ctx, dlv); err != nil {
		return err
	}

	if dlv.IsTerminallyFailed() {
		shp, shpErr := uow.ShipmentRepository().Get(ctx, dlv.ShipmentID())
		if shpErr != nil {
			return shpErr
		}
		if shpErr = shp.Delay(); shpErr != nil {
			return shpErr
		}
		if shpErr = uow.ShipmentRepository().Update(ctx, shp); shpErr != nil {
			return shpErr
		}
	}

	return uow.Commit(ctx)
}
