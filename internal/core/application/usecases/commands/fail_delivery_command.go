package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrFailDeliveryCommandIsNotConstructed = errors.New(
	"FailDeliveryCommand must be created via NewFailDeliveryCommand constructor",
)

// FailDeliveryCommand represents a request to fail the current delivery
// attempt with a reason.
type FailDeliveryCommand struct { //nolint:recvcheck //using for validation
	deliveryID kernel.UUID
	reason     string

	guard guard.ConstructorGuard
}

// NewFailDeliveryCommand creates a command to fail a delivery attempt.
func NewFailDeliveryCommand(deliveryID kernel.UUID, reason string) (FailDeliveryCommand, error) {
	cmd := FailDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDeliveryID(deliveryID),
		cmd.setReason(reason),
	); err != nil {
		return FailDeliveryCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c FailDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrFailDeliveryCommandIsNotConstructed)
}

// DeliveryID returns the delivery's unique identifier.
func (c FailDeliveryCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// Reason returns the failure reason.
func (c FailDeliveryCommand) Reason() string {
	return c.reason
}

func (c *FailDeliveryCommand) setDeliveryID(deliveryID kernel.UUID) error {
	if err := deliveryID.Validate(); err != nil {
		return err
	}

	c.deliveryID = deliveryID
	return nil
}

func (c *FailDeliveryCommand) setReason(reason string) error {
	if reason == "" {
		return errs.NewValueIsRequiredError("reason")
	}

	c.reason = reason
	return nil
}
