package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrCompleteDeliveryCommandIsNotConstructed = errors.New(
	"CompleteDeliveryCommand must be created via NewCompleteDeliveryCommand constructor",
)

// CompleteDeliveryCommand represents a request to complete the current
// delivery attempt, delivering the shipment with it.
type CompleteDeliveryCommand struct { //nolint:recvcheck //using for validation
	deliveryID        kernel.UUID
	signatureObtained bool

	guard guard.ConstructorGuard
}

// NewCompleteDeliveryCommand creates a command to complete a delivery.
func NewCompleteDeliveryCommand(deliveryID kernel.UUID, signatureObtained bool) (CompleteDeliveryCommand, error) {
	cmd := CompleteDeliveryCommand{
		signatureObtained: signatureObtained,
		guard:             guard.NewConstructorGuard(),
	}

	if err := cmd.setDeliveryID(deliveryID); err != nil {
		return CompleteDeliveryCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrCompleteDeliveryCommandIsNotConstructed)
}

// DeliveryID returns the delivery's unique identifier.
func (c CompleteDeliveryCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// SignatureObtained reports whether the recipient signed.
func (c CompleteDeliveryCommand) SignatureObtained() bool {
	return c.signatureObtained
}

func (c *CompleteDeliveryCommand) setDeliveryID(deliveryID kernel.UUID) error {
	if err := deliveryID.Validate(); err != nil {
		return err
	}

	c.deliveryID = deliveryID
	return nil
}
