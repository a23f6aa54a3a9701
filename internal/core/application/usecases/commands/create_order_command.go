package commands

import (
	"errors"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrOrderNumberIsRequired = errs.NewValueIsRequiredError("orderNumber")
	ErrCostIsInvalid         = errors.New("cost must be greater than 0")
)

// CreateOrderCommand represents a request to register a new order in Pending
// status. Encapsulates the order identity, the customer and warehouse
// references, dates, cost, priority and cargo details.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	orderNumber  string
	customerID   kernel.UUID
	warehouseID  kernel.UUID
	orderDate    time.Time
	deliveryDate time.Time
	cost         float64
	priority     order.Priority
	details      order.Details

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new order.
// Validates identities, the order number, the cost and the priority; date
// ordering is enforced by the aggregate itself.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	orderNumber string,
	customerID kernel.UUID,
	warehouseID kernel.UUID,
	orderDate time.Time,
	deliveryDate time.Time,
	cost float64,
	priority order.Priority,
	details order.Details,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		orderDate:    orderDate,
		deliveryDate: deliveryDate,
		details:      details,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setOrderNumber(orderNumber),
		cmd.setCustomerID(customerID),
		cmd.setWarehouseID(warehouseID),
		cmd.setCost(cost),
		cmd.setPriority(priority),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// OrderNumber returns the human-readable order number.
func (c CreateOrderCommand) OrderNumber() string {
	return c.orderNumber
}

// CustomerID returns the ordering customer reference.
func (c CreateOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// WarehouseID returns the origin warehouse reference.
func (c CreateOrderCommand) WarehouseID() kernel.UUID {
	return c.warehouseID
}

// OrderDate returns the date the order was placed.
func (c CreateOrderCommand) OrderDate() time.Time {
	return c.orderDate
}

// DeliveryDate returns the promised delivery date.
func (c CreateOrderCommand) DeliveryDate() time.Time {
	return c.deliveryDate
}

// Cost returns the order cost.
func (c CreateOrderCommand) Cost() float64 {
	return c.cost
}

// Priority returns the order priority.
func (c CreateOrderCommand) Priority() order.Priority {
	return c.priority
}

// Details returns the cargo details.
func (c CreateOrderCommand) Details() order.Details {
	return c.details
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setOrderNumber(orderNumber string) error {
	if orderNumber == "" {
		return ErrOrderNumberIsRequired
	}

	c.orderNumber = orderNumber
	return nil
}

func (c *CreateOrderCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customerId", err)
	}

	c.customerID = customerID
	return nil
}

func (c *CreateOrderCommand) setWarehouseID(warehouseID kernel.UUID) error {
	if err := warehouseID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("warehouseId", err)
	}

	c.warehouseID = warehouseID
	return nil
}

func (c *CreateOrderCommand) setCost(cost float64) error {
	if cost <= 0 {
		return ErrCostIsInvalid
	}

	c.cost = cost
	return nil
}

func (c *CreateOrderCommand) setPriority(priority order.Priority) error {
	if err := priority.Validate(); err != nil {
		return err
	}

	c.priority = priority
	return nil
}
