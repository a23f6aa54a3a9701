package order

import (
	"errors"
	"fmt"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

// Domain errors for order operations.
var (
	// ErrOrderIsNotConstructed is returned when using an Order that was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
	// ErrOrderNumberIsRequired is returned when the order number is empty.
	ErrOrderNumberIsRequired = errs.NewValueIsRequiredError("orderNumber")
	// ErrInvalidDateRange is returned when the requested delivery date
	// precedes the order date.
	ErrInvalidDateRange = errors.New("delivery date must not precede order date")
	// ErrOrderNotShippable is returned when dispatching a shipment for an
	// order that is not in Pending or Processing status.
	ErrOrderNotShippable = errors.New("order is not in a shippable status")
	// ErrOrderNotRedispatchable is returned when trying to reopen an order
	// that has no dispatched shipment state to release.
	ErrOrderNotRedispatchable = errors.New("order has no dispatched shipment to release")
)

// Details carries the optional descriptive attributes of an order. The zero
// value is a valid empty set of details.
type Details struct {
	Description       string
	TotalWeightKg     float64
	TotalVolumeCubicM float64
	Notes             string
}

// Order is the aggregate root owning the order lifecycle. It tracks a
// customer's request for goods from creation through shipment to delivery.
//
// Invariants:
//   - Order number is unique and immutable.
//   - Requested delivery date is never before the order date.
//   - Cost is positive.
//   - Status moves only along the closed graph defined by Status.
//
// The aggregate never deletes itself; terminal statuses (Delivered,
// Cancelled) close it out. Mutation is limited to status transitions: the
// dispatcher drives Processing/Shipped/Delivered, direct cancellation drives
// Cancelled, and a shipment cancellation may hand the order back to Pending
// for re-dispatch.
type Order struct {
	id           kernel.UUID
	orderNumber  string
	customerID   kernel.UUID
	warehouseID  kernel.UUID
	orderDate    time.Time
	deliveryDate time.Time
	details      Details
	cost         float64
	priority     Priority
	status       Status

	guard guard.ConstructorGuard
}

// NewOrder creates a new Order in Pending status.
//
// All identity parameters must be valid UUIDs, the order number must be
// non-empty, the cost positive, and the delivery date must not precede the
// order date (ErrInvalidDateRange otherwise).
func NewOrder(
	id kernel.UUID,
	orderNumber string,
	customerID kernel.UUID,
	warehouseID kernel.UUID,
	orderDate time.Time,
	deliveryDate time.Time,
	cost float64,
	priority Priority,
	details Details,
) (*Order, error) {
	o := &Order{
		status: Pending,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setOrderNumber(orderNumber),
		o.setCustomerID(customerID),
		o.setWarehouseID(warehouseID),
		o.setDates(orderDate, deliveryDate),
		o.setCost(cost),
		o.setPriority(priority),
	); err != nil {
		return nil, err
	}

	o.details = details
	return o, nil
}

// RestoreOrder reconstructs an Order from persistent storage, preserving its
// persisted status. Used exclusively by repository adapters.
func RestoreOrder(
	id kernel.UUID,
	orderNumber string,
	customerID kernel.UUID,
	warehouseID kernel.UUID,
	orderDate time.Time,
	deliveryDate time.Time,
	cost float64,
	priority Priority,
	details Details,
	status Status,
) (*Order, error) {
	o, err := NewOrder(id, orderNumber, customerID, warehouseID, orderDate, deliveryDate, cost, priority, details)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}
	o.status = status

	return o, nil
}

// Validate ensures the Order was created through a constructor.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by identity.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// OrderNumber returns the immutable business identifier of the order.
func (o *Order) OrderNumber() string {
	return o.orderNumber
}

// CustomerID returns the reference to the ordering customer.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// WarehouseID returns the reference to the originating warehouse.
func (o *Order) WarehouseID() kernel.UUID {
	return o.warehouseID
}

// OrderDate returns the date the order was placed.
func (o *Order) OrderDate() time.Time {
	return o.orderDate
}

// DeliveryDate returns the requested delivery date.
func (o *Order) DeliveryDate() time.Time {
	return o.deliveryDate
}

// Details returns the optional descriptive attributes.
func (o *Order) Details() Details {
	return o.details
}

// Cost returns the monetary cost of the order.
func (o *Order) Cost() float64 {
	return o.cost
}

// Priority returns the order priority.
func (o *Order) Priority() Priority {
	return o.priority
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// TransitionTo moves the order to target if the transition graph allows it.
// Fails with ErrInvalidTransition otherwise.
func (o *Order) TransitionTo(target Status) error {
	newStatus, err := o.status.TransitionTo(target)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Cancel terminates the order from any non-terminal state.
func (o *Order) Cancel() error {
	return o.TransitionTo(Cancelled)
}

// ValidateShippable checks the dispatch precondition: a shipment may only be
// created for an order in Pending or Processing status.
func (o *Order) ValidateShippable() error {
	if o.status != Pending && o.status != Processing {
		return fmt.Errorf("%w: status is %s", ErrOrderNotShippable, o.status)
	}
	return nil
}

// ReleaseForRedispatch hands the order back to Pending after its shipment
// was cancelled, so a new shipment can be dispatched. Only the dispatcher
// calls this; it is the single sanctioned departure from the monotonic
// chain, and only from Processing or Shipped.
func (o *Order) ReleaseForRedispatch() error {
	if o.status != Processing && o.status != Shipped {
		return fmt.Errorf("%w: status is %s", ErrOrderNotRedispatchable, o.status)
	}

	o.status = Pending
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setOrderNumber(orderNumber string) error {
	if orderNumber == "" {
		return ErrOrderNumberIsRequired
	}
	o.orderNumber = orderNumber
	return nil
}

func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customerId", err)
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setWarehouseID(warehouseID kernel.UUID) error {
	if err := warehouseID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("warehouseId", err)
	}
	o.warehouseID = warehouseID
	return nil
}

func (o *Order) setDates(orderDate, deliveryDate time.Time) error {
	if orderDate.IsZero() {
		return errs.NewValueIsRequiredError("orderDate")
	}
	if deliveryDate.Before(orderDate) {
		return fmt.Errorf("%w: delivery %s precedes order %s",
			ErrInvalidDateRange,
			deliveryDate.Format(time.DateOnly),
			orderDate.Format(time.DateOnly))
	}
	o.orderDate = orderDate
	o.deliveryDate = deliveryDate
	return nil
}

func (o *Order) setCost(cost float64) error {
	if cost <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("cost", fmt.Errorf("%v is not greater than 0", cost))
	}
	o.cost = cost
	return nil
}

func (o *Order) setPriority(priority Priority) error {
	if err := priority.Validate(); err != nil {
		return err
	}
	o.priority = priority
	return nil
}
