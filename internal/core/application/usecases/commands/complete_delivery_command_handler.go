package commands

import (
	"context"

	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/services"
)

// CompleteDeliveryCommandHandler completes the delivery attempt in progress
// and carries the success through the rest of the lifecycle in one
// transaction: the shipment becomes Delivered with its arrival stamped at
// the route distance, the driver/vehicle pair is released and the order is
// marked Delivered.
type CompleteDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
	registry   services.ResourceRegistry
	locker     EntityLocker
}

// NewCompleteDeliveryCommandHandler creates a handler for delivery completion.
func NewCompleteDeliveryCommandHandler(
	uowFactory DeliveryUoWFactory,
	registry services.ResourceRegistry,
	locker EntityLocker,
) CompleteDeliveryCommandHandler {
	return CompleteDeliveryCommandHandler{
		uowFactory: uowFactory,
		registry:   registry,
		locker:     locker,
	}
}

// Handle processes the completion command. Lock acquisition runs delivery
// key, then shipment key, then related order and resource keys; every
// handler that crosses these classes acquires them in the same class order,
// so the scheme stays deadlock free.
func (h *CompleteDeliveryCommandHandler) Handle(ctx context.Context, cmd CompleteDeliveryCommand) error {
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

	shp, err := uow.ShipmentRepository().Get(ctx, dlv.ShipmentID())
	if err != nil {
		return err
	}

	unlockRelated := h.locker.Lock(
		shp.OrderID().String(),
		shp.DriverID().String(),
		shp.VehicleID().String(),
	)
	defer unlockRelated()

	if err = dlv.Complete(cmd.SignatureObtained()); err != nil {
		return err
	}

	rt, err := uow.RouteRepository().Get(ctx, shp.RouteID())
	if err != nil {
		return err
	}
	if err = shp.Deliver(rt.DistanceKm()); err != nil {
		return err
	}
	if err = releaseShipmentResources(ctx, uow, h.registry, shp, int(rt.DistanceKm())); err != nil {
		return err
	}

	ord, err := uow.OrderRepository().Get(ctx, shp.OrderID())
	if err != nil {
		return err
	}
	if err = ord.TransitionTo(order.Delivered); err != nil {
		return err
	}

	if err = uow.DeliveryRepository().Update(ctx, dlv); err != nil {
		return err
	}
	if err = uow.ShipmentRepository().Update(ctx, shp); err != nil {
		return err
	}
	if err = uow.OrderRepository().Update(ctx, ord); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
