package commands

import (
	"context"
	"errors"

	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/core/domain/services"
	"logistics/internal/pkg/errs"
)

// DispatchShipmentCommandHandler creates a shipment for a shippable order,
// claiming a driver/vehicle pair through the resource registry. The whole
// operation is atomic: either the shipment exists in Pending status with the
// pair claimed and the order in Processing, or nothing changed.
type DispatchShipmentCommandHandler struct {
	uowFactory ShipmentUoWFactory
	registry   services.ResourceRegistry
	locker     EntityLocker
}

// NewDispatchShipmentCommandHandler creates a handler for shipment dispatch.
func NewDispatchShipmentCommandHandler(
	uowFactory ShipmentUoWFactory,
	registry services.ResourceRegistry,
	locker EntityLocker,
) DispatchShipmentCommandHandler {
	return DispatchShipmentCommandHandler{
		uowFactory: uowFactory,
		registry:   registry,
		locker:     locker,
	}
}

// Handle processes the dispatch command. The order, driver and vehicle keys
// are locked together for the duration, so concurrent dispatches competing
// for the same resources are serialized and the availability check stays
// valid until commit.
func (h *DispatchShipmentCommandHandler) Handle(ctx context.Context, cmd DispatchShipmentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	unlock := h.locker.Lock(
		cmd.OrderID().String(),
		cmd.DriverID().String(),
		cmd.VehicleID().String(),
	)
	defer unlock()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	ord, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}
	if err = ord.ValidateShippable(); err != nil {
		return err
	}

	_, err = uow.ShipmentRepository().GetActiveByOrder(ctx, cmd.OrderID())
	switch {
	case err == nil:
		return ErrOrderAlreadyDispatched
	case !errors.Is(err, errs.ErrObjectNotFound):
		return err
	}

	rt, err := uow.RouteRepository().Get(ctx, cmd.RouteID())
	if err != nil {
		return err
	}
	if !rt.IsActive() {
		return ErrRouteIsNotActive
	}

	drv, err := uow.DriverRepository().Get(ctx, cmd.DriverID())
	if err != nil {
		return err
	}
	veh, err := uow.VehicleRepository().Get(ctx, cmd.VehicleID())
	if err != nil {
		return err
	}

	if _, err = h.registry.Claim(drv, veh); err != nil {
		return err
	}

	shp, err := shipment.NewShipment(
		cmd.ShipmentID(),
		cmd.ShipmentNumber(),
		cmd.OrderID(),
		cmd.DriverID(),
		cmd.VehicleID(),
		cmd.RouteID(),
		cmd.Cost(),
	)
	if err != nil {
		return err
	}

	if err = ord.TransitionTo(order.Processing); err != nil {
		return err
	}

	if err = uow.DriverRepository().Update(ctx, drv); err != nil {
		return err
	}
	if err = uow.VehicleRepository().Update(ctx, veh); err != nil {
		return err
	}
	if err = uow.OrderRepository().Update(ctx, ord); err != nil {
		return err
	}
	if err = uow.ShipmentRepository().Add(ctx, shp); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
