package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var (
	ErrDispatchShipmentCommandIsNotConstructed = errors.New(
		"DispatchShipmentCommand must be created via NewDispatchShipmentCommand constructor",
	)
	ErrShipmentNumberIsRequired = errs.NewValueIsRequiredError("shipmentNumber")

	// ErrOrderAlreadyDispatched is returned when the order already has a
	// non-terminal shipment. An order is carried by at most one active
	// shipment at a time.
	ErrOrderAlreadyDispatched = errors.New("order already has an active shipment")

	// ErrRouteIsNotActive is returned when dispatching over a deactivated route.
	ErrRouteIsNotActive = errors.New("route is not active")
)

// DispatchShipmentCommand represents a request to create a shipment for an
// order, claiming a driver and a vehicle for it.
type DispatchShipmentCommand struct { //nolint:recvcheck //using for validation
	shipmentID     kernel.UUID
	shipmentNumber string
	orderID        kernel.UUID
	driverID       kernel.UUID
	vehicleID      kernel.UUID
	routeID        kernel.UUID
	cost           float64

	guard guard.ConstructorGuard
}

// NewDispatchShipmentCommand creates a command to dispatch a shipment.
func NewDispatchShipmentCommand(
	shipmentID kernel.UUID,
	shipmentNumber string,
	orderID kernel.UUID,
	driverID kernel.UUID,
	vehicleID kernel.UUID,
	routeID kernel.UUID,
	cost float64,
) (DispatchShipmentCommand, error) {
	cmd := DispatchShipmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setShipmentID(shipmentID),
		cmd.setShipmentNumber(shipmentNumber),
		cmd.setOrderID(orderID),
		cmd.setDriverID(driverID),
		cmd.setVehicleID(vehicleID),
		cmd.setRouteID(routeID),
		cmd.setCost(cost),
	); err != nil {
		return DispatchShipmentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DispatchShipmentCommand) Validate() error {
	return c.guard.Validate(ErrDispatchShipmentCommandIsNotConstructed)
}

// ShipmentID returns the new shipment's unique identifier.
func (c DispatchShipmentCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// ShipmentNumber returns the human-readable shipment number.
func (c DispatchShipmentCommand) ShipmentNumber() string {
	return c.shipmentNumber
}

// OrderID returns the order being shipped.
func (c DispatchShipmentCommand) OrderID() kernel.UUID {
	return c.orderID
}

// DriverID returns the driver to claim.
func (c DispatchShipmentCommand) DriverID() kernel.UUID {
	return c.driverID
}

// VehicleID returns the vehicle to claim.
func (c DispatchShipmentCommand) VehicleID() kernel.UUID {
	return c.vehicleID
}

// RouteID returns the route the shipment travels.
func (c DispatchShipmentCommand) RouteID() kernel.UUID {
	return c.routeID
}

// Cost returns the shipment cost.
func (c DispatchShipmentCommand) Cost() float64 {
	return c.cost
}

func (c *DispatchShipmentCommand) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}

	c.shipmentID = shipmentID
	return nil
}

func (c *DispatchShipmentCommand) setShipmentNumber(number string) error {
	if number == "" {
		return ErrShipmentNumberIsRequired
	}

	c.shipmentNumber = number
	return nil
}

func (c *DispatchShipmentCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("orderId", err)
	}

	c.orderID = orderID
	return nil
}

func (c *DispatchShipmentCommand) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("driverId", err)
	}

	c.driverID = driverID
	return nil
}

func (c *DispatchShipmentCommand) setVehicleID(vehicleID kernel.UUID) error {
	if err := vehicleID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("vehicleId", err)
	}

	c.vehicleID = vehicleID
	return nil
}

func (c *DispatchShipmentCommand) setRouteID(routeID kernel.UUID) error {
	if err := routeID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("routeId", err)
	}

	c.routeID = routeID
	return nil
}

func (c *DispatchShipmentCommand) setCost(cost float64) error {
	if cost <= 0 {
		return ErrCostIsInvalid
	}

	c.cost = cost
	return nil
}
