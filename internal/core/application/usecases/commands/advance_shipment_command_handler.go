package commands

import (
	"context"

	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/core/domain/services"
)

// AdvanceShipmentCommandHandler moves a shipment through its lifecycle and
// keeps the order and the claimed resources consistent with it:
//
//   - InTransit stamps the departure, computes the expected arrival from the
//     route and marks the order Shipped.
//   - Delivered stamps the arrival, releases the driver/vehicle pair, adds
//     the distance to the vehicle's odometer and marks the order Delivered.
//   - Delayed flags the shipment; the claim is kept so the delayed cargo
//     still has its driver and vehicle.
//   - Cancelled releases the pair and returns the order to Pending for
//     redispatch, unless the order itself was cancelled.
type AdvanceShipmentCommandHandler struct {
	uowFactory ShipmentUoWFactory
	registry   services.ResourceRegistry
	locker     EntityLocker
}

// NewAdvanceShipmentCommandHandler creates a handler for shipment transitions.
func NewAdvanceShipmentCommandHandler(
	uowFactory ShipmentUoWFactory,
	registry services.ResourceRegistry,
	locker EntityLocker,
) AdvanceShipmentCommandHandler {
	return AdvanceShipmentCommandHandler{
		uowFactory: uowFactory,
		registry:   registry,
		locker:     locker,
	}
}

// Handle processes the transition command. The shipment key is locked before
// the related order and resource keys; shipment keys are never acquired
// after resource keys anywhere, so the ordering is deadlock free.
func (h *AdvanceShipmentCommandHandler) Handle(ctx context.Context, cmd AdvanceShipmentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	unlockShipment := h.locker.Lock(cmd.ShipmentID().String())
	defer unlockShipment()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	shp, err := uow.ShipmentRepository().Get(ctx, cmd.ShipmentID())
	if err != nil {
		return err
	}

	unlockRelated := h.locker.Lock(
		shp.OrderID().String(),
		shp.DriverID().String(),
		shp.VehicleID().String(),
	)
	defer unlockRelated()

	switch cmd.Target() {
	case shipment.InTransit:
		err = h.depart(ctx, uow, shp)
	case shipment.Delivered:
		err = h.deliver(ctx, uow, shp, cmd.DistanceTraveledKm())
	case shipment.Delayed:
		err = shp.Delay()
	case shipment.Cancelled:
		err = h.cancel(ctx, uow, shp)
	default:
		err = shipment.ErrInvalidTransition
	}
	if err != nil {
		return err
	}

	if err = uow.ShipmentRepository().Update(ctx, shp); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func (h *AdvanceShipmentCommandHandler) depart(
	ctx context.Context,
	uow ShipmentUoW,
	shp *shipment.Shipment,
) error {
	rt, err := uow.RouteRepository().Get(ctx, shp.RouteID())
	if err != nil {
		return err
	}
	if err = shp.Depart(rt.EstimatedDuration()); err != nil {
		return err
	}

	ord, err := uow.OrderRepository().Get(ctx, shp.OrderID())
	if err != nil {
		return err
	}
	if err = ord.TransitionTo(order.Shipped); err != nil {
		return err
	}

	return uow.OrderRepository().Update(ctx, ord)
}

func (h *AdvanceShipmentCommandHandler) deliver(
	ctx context.Context,
	uow ShipmentUoW,
	shp *shipment.Shipment,
	distanceTraveledKm float64,
) error {
	if err := shp.Deliver(distanceTraveledKm); err != nil {
		return err
	}
	if err := releaseShipmentResources(ctx, uow, h.registry, shp, int(distanceTraveledKm)); err != nil {
		return err
	}

	ord, err := uow.OrderRepository().Get(ctx, shp.OrderID())
	if err != nil {
		return err
	}
	if err = ord.TransitionTo(order.Delivered); err != nil {
		return err
	}

	return uow.OrderRepository().Update(ctx, ord)
}

func (h *AdvanceShipmentCommandHandler) cancel(
	ctx context.Context,
	uow ShipmentUoW,
	shp *shipment.Shipment,
) error {
	if err := shp.Cancel(); err != nil {
		return err
	}
	if err := releaseShipmentResources(ctx, uow, h.registry, shp, 0); err != nil {
		return err
	}

	ord, err := uow.OrderRepository().Get(ctx, shp.OrderID())
	if err != nil {
		return err
	}

	// A cancelled order stays cancelled; anything else goes back to the
	// dispatch pool.
	if ord.Status() == order.Cancelled {
		return nil
	}
	if err = ord.ReleaseForRedispatch(); err != nil {
		return err
	}

	return uow.OrderRepository().Update(ctx, ord)
}
