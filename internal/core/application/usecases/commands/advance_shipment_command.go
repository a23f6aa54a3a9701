package commands

import (
	"errors"
	"fmt"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrAdvanceShipmentCommandIsNotConstructed = errors.New(
	"AdvanceShipmentCommand must be created via NewAdvanceShipmentCommand constructor",
)

// AdvanceShipmentCommand represents a request to move a shipment to a target
// status: InTransit (departure), Delivered, Delayed or Cancelled. The
// shipment's transition table decides whether the move is legal.
type AdvanceShipmentCommand struct { //nolint:recvcheck //using for validation
	shipmentID         kernel.UUID
	target             shipment.Status
	distanceTraveledKm float64

	guard guard.ConstructorGuard
}

// NewAdvanceShipmentCommand creates a command to advance a shipment.
// distanceTraveledKm is meaningful only for the Delivered target; pass 0
// otherwise.
func NewAdvanceShipmentCommand(
	shipmentID kernel.UUID,
	target shipment.Status,
	distanceTraveledKm float64,
) (AdvanceShipmentCommand, error) {
	cmd := AdvanceShipmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setShipmentID(shipmentID),
		cmd.setTarget(target),
		cmd.setDistanceTraveledKm(distanceTraveledKm),
	); err != nil {
		return AdvanceShipmentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AdvanceShipmentCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceShipmentCommandIsNotConstructed)
}

// ShipmentID returns the shipment's unique identifier.
func (c AdvanceShipmentCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// Target returns the requested status.
func (c AdvanceShipmentCommand) Target() shipment.Status {
	return c.target
}

// DistanceTraveledKm returns the distance covered, for the Delivered target.
func (c AdvanceShipmentCommand) DistanceTraveledKm() float64 {
	return c.distanceTraveledKm
}

func (c *AdvanceShipmentCommand) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}

	c.shipmentID = shipmentID
	return nil
}

func (c *AdvanceShipmentCommand) setTarget(target shipment.Status) error {
	if err := target.Validate(); err != nil {
		return err
	}
	// Pending is the birth status, never a transition target.
	if target == shipment.Pending {
		return errs.NewValueIsInvalidErrorWithCause(
			"target", fmt.Errorf("%s is not a reachable status", target))
	}

	c.target = target
	return nil
}

func (c *AdvanceShipmentCommand) setDistanceTraveledKm(km float64) error {
	if km < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"distanceTraveledKm", fmt.Errorf("%v is negative", km))
	}

	c.distanceTraveledKm = km
	return nil
}
