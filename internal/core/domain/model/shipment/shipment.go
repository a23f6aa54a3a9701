package shipment

import (
	"errors"
	"fmt"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

// Domain errors for shipment operations.
var (
	// ErrShipmentIsNotConstructed is returned when using a Shipment that was
	// not created through NewShipment or RestoreShipment.
	ErrShipmentIsNotConstructed = errors.New("Shipment must be created via NewShipment constructor")
	// ErrShipmentNumberIsRequired is returned when the shipment number is empty.
	ErrShipmentNumberIsRequired = errs.NewValueIsRequiredError("shipmentNumber")
	// ErrShipmentNotInTransit is returned when recording a delivery attempt
	// against a shipment that is not in transit.
	ErrShipmentNotInTransit = errors.New("shipment is not in transit")
	// ErrClaimStillHeld is returned when releasing the resource claim of a
	// shipment that is still in a resource-holding status.
	ErrClaimStillHeld = errors.New("shipment still holds its resource claim")
)

// Shipment is the aggregate root for a single dispatch event: it binds
// exactly one Order to one Driver, one Vehicle and one Route.
//
// Invariants:
//   - The shipment holds an exclusive claim on its driver and vehicle for
//     the entire time its status holds resources (Pending, InTransit,
//     Delayed).
//   - The claim is released exactly once, at the first transition into a
//     releasing terminal status (Delivered or Cancelled). The
//     resourcesReleased flag makes that release observable and idempotent
//     even under retried terminal transitions.
type Shipment struct {
	id             kernel.UUID
	shipmentNumber string
	orderID        kernel.UUID
	driverID       kernel.UUID
	vehicleID      kernel.UUID
	routeID        kernel.UUID
	status         Status

	departureTime       *time.Time
	expectedArrivalTime *time.Time
	actualArrivalTime   *time.Time

	distanceTraveledKm float64
	fuelConsumedLiters float64
	cost               float64

	resourcesReleased bool

	guard guard.ConstructorGuard
}

// NewShipment creates a Shipment in Pending status. The dispatcher calls
// this only after the driver/vehicle claim succeeded, so a new shipment is
// born holding its resources.
func NewShipment(
	id kernel.UUID,
	shipmentNumber string,
	orderID kernel.UUID,
	driverID kernel.UUID,
	vehicleID kernel.UUID,
	routeID kernel.UUID,
	cost float64,
) (*Shipment, error) {
	s := &Shipment{
		status: Pending,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		s.setID(id),
		s.setShipmentNumber(shipmentNumber),
		s.setOrderID(orderID),
		s.setDriverID(driverID),
		s.setVehicleID(vehicleID),
		s.setRouteID(routeID),
		s.setCost(cost),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// RestoreShipment reconstructs a Shipment from persistent storage.
func RestoreShipment(
	id kernel.UUID,
	shipmentNumber string,
	orderID kernel.UUID,
	driverID kernel.UUID,
	vehicleID kernel.UUID,
	routeID kernel.UUID,
	cost float64,
	status Status,
	departureTime *time.Time,
	expectedArrivalTime *time.Time,
	actualArrivalTime *time.Time,
	distanceTraveledKm float64,
	fuelConsumedLiters float64,
	resourcesReleased bool,
) (*Shipment, error) {
	s, err := NewShipment(id, shipmentNumber, orderID, driverID, vehicleID, routeID, cost)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}

	s.status = status
	s.departureTime = departureTime
	s.expectedArrivalTime = expectedArrivalTime
	s.actualArrivalTime = actualArrivalTime
	s.distanceTraveledKm = distanceTraveledKm
	s.fuelConsumedLiters = fuelConsumedLiters
	s.resourcesReleased = resourcesReleased

	return s, nil
}

// Validate ensures the Shipment was created through a constructor.
func (s *Shipment) Validate() error {
	if s == nil {
		return ErrShipmentIsNotConstructed
	}
	return s.guard.Validate(ErrShipmentIsNotConstructed)
}

// IsEqual compares two shipments by identity.
func (s *Shipment) IsEqual(other *Shipment) bool {
	return other != nil && s.id.IsEqual(other.id)
}

// ID returns the shipment's unique identifier.
func (s *Shipment) ID() kernel.UUID {
	return s.id
}

// ShipmentNumber returns the immutable business identifier.
func (s *Shipment) ShipmentNumber() string {
	return s.shipmentNumber
}

// OrderID returns the reference to the shipped order.
func (s *Shipment) OrderID() kernel.UUID {
	return s.orderID
}

// DriverID returns the reference to the claimed driver.
func (s *Shipment) DriverID() kernel.UUID {
	return s.driverID
}

// VehicleID returns the reference to the claimed vehicle.
func (s *Shipment) VehicleID() kernel.UUID {
	return s.vehicleID
}

// RouteID returns the reference to the planned route.
func (s *Shipment) RouteID() kernel.UUID {
	return s.routeID
}

// Status returns the current dispatch status.
func (s *Shipment) Status() Status {
	return s.status
}

// DepartureTime returns the recorded departure, nil before departure.
func (s *Shipment) DepartureTime() *time.Time {
	return s.departureTime
}

// ExpectedArrivalTime returns the arrival estimate set at departure.
func (s *Shipment) ExpectedArrivalTime() *time.Time {
	return s.expectedArrivalTime
}

// ActualArrivalTime returns the recorded arrival, nil until delivered.
func (s *Shipment) ActualArrivalTime() *time.Time {
	return s.actualArrivalTime
}

// DistanceTraveledKm returns the distance recorded on delivery.
func (s *Shipment) DistanceTraveledKm() float64 {
	return s.distanceTraveledKm
}

// FuelConsumedLiters returns the fuel figure reported for the trip.
func (s *Shipment) FuelConsumedLiters() float64 {
	return s.fuelConsumedLiters
}

// Cost returns the shipment cost.
func (s *Shipment) Cost() float64 {
	return s.cost
}

// ResourcesReleased reports whether the driver/vehicle claim has already
// been handed back.
func (s *Shipment) ResourcesReleased() bool {
	return s.resourcesReleased
}

// Depart moves the shipment from Pending to InTransit, recording the
// departure time and deriving the expected arrival from the route's
// estimated duration.
func (s *Shipment) Depart(estimatedDuration time.Duration) error {
	newStatus, err := s.status.TransitionTo(InTransit)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	expected := now.Add(estimatedDuration)

	s.status = newStatus
	s.departureTime = &now
	s.expectedArrivalTime = &expected
	return nil
}

// Deliver moves the shipment from InTransit to Delivered, recording the
// actual arrival time and the distance traveled.
func (s *Shipment) Deliver(distanceTraveledKm float64) error {
	newStatus, err := s.status.TransitionTo(Delivered)
	if err != nil {
		return err
	}

	now := time.Now().UTC()

	s.status = newStatus
	s.actualArrivalTime = &now
	s.distanceTraveledKm = distanceTraveledKm
	return nil
}

// Delay flags an in-transit shipment for manual intervention. The resource
// claim is kept.
func (s *Shipment) Delay() error {
	newStatus, err := s.status.TransitionTo(Delayed)
	if err != nil {
		return err
	}

	s.status = newStatus
	return nil
}

// Cancel abandons the shipment from Pending, InTransit or Delayed.
func (s *Shipment) Cancel() error {
	newStatus, err := s.status.TransitionTo(Cancelled)
	if err != nil {
		return err
	}

	s.status = newStatus
	return nil
}

// ValidateInTransit checks the delivery-attempt precondition.
func (s *Shipment) ValidateInTransit() error {
	if s.status != InTransit {
		return fmt.Errorf("%w: status is %s", ErrShipmentNotInTransit, s.status)
	}
	return nil
}

// ReleaseClaim marks the driver/vehicle claim as handed back. It reports
// true only on the first call, so the caller performs the actual resource
// release exactly once. Calling it while the shipment still holds its
// resources is a programming error and fails with ErrClaimStillHeld.
func (s *Shipment) ReleaseClaim() (bool, error) {
	if s.status.HoldsResources() {
		return false, fmt.Errorf("%w: status is %s", ErrClaimStillHeld, s.status)
	}

	if s.resourcesReleased {
		return false, nil
	}

	s.resourcesReleased = true
	return true, nil
}

func (s *Shipment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Shipment) setShipmentNumber(number string) error {
	if number == "" {
		return ErrShipmentNumberIsRequired
	}
	s.shipmentNumber = number
	return nil
}

func (s *Shipment) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("orderId", err)
	}
	s.orderID = orderID
	return nil
}

func (s *Shipment) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("driverId", err)
	}
	s.driverID = driverID
	return nil
}

func (s *Shipment) setVehicleID(vehicleID kernel.UUID) error {
	if err := vehicleID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("vehicleId", err)
	}
	s.vehicleID = vehicleID
	return nil
}

func (s *Shipment) setRouteID(routeID kernel.UUID) error {
	if err := routeID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("routeId", err)
	}
	s.routeID = routeID
	return nil
}

func (s *Shipment) setCost(cost float64) error {
	if cost < 0 {
		return errs.NewValueIsInvalidErrorWithCause("cost", fmt.Errorf("%v is negative", cost))
	}
	s.cost = cost
	return nil
}
