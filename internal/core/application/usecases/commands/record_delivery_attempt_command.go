package commands

import (
	"errors"

	"logistics/internal/core/domain/model/delivery"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrRecordDeliveryAttemptCommandIsNotConstructed = errors.New(
	"RecordDeliveryAttemptCommand must be created via NewRecordDeliveryAttemptCommand constructor",
)

// RecordDeliveryAttemptCommand represents a request to start a delivery
// attempt for an in-transit shipment. The first attempt creates the delivery
// record; later attempts reopen the existing record as reattempts, bounded
// by the attempt cap.
type RecordDeliveryAttemptCommand struct { //nolint:recvcheck //using for validation
	deliveryID        kernel.UUID
	shipmentID        kernel.UUID
	recipient         delivery.Recipient
	signatureRequired bool

	guard guard.ConstructorGuard
}

// NewRecordDeliveryAttemptCommand creates a command to record an attempt.
// deliveryID names the record to create; it is ignored when the shipment
// already has one.
func NewRecordDeliveryAttemptCommand(
	deliveryID kernel.UUID,
	shipmentID kernel.UUID,
	recipient delivery.Recipient,
	signatureRequired bool,
) (RecordDeliveryAttemptCommand, error) {
	cmd := RecordDeliveryAttemptCommand{
		signatureRequired: signatureRequired,
		guard:             guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDeliveryID(deliveryID),
		cmd.setShipmentID(shipmentID),
		cmd.setRecipient(recipient),
	); err != nil {
		return RecordDeliveryAttemptCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RecordDeliveryAttemptCommand) Validate() error {
	return c.guard.Validate(ErrRecordDeliveryAttemptCommandIsNotConstructed)
}

// DeliveryID returns the identifier for a newly created delivery record.
func (c RecordDeliveryAttemptCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// ShipmentID returns the shipment being delivered.
func (c RecordDeliveryAttemptCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// Recipient returns the consignee details.
func (c RecordDeliveryAttemptCommand) Recipient() delivery.Recipient {
	return c.recipient
}

// SignatureRequired reports whether completion needs a signature.
func (c RecordDeliveryAttemptCommand) SignatureRequired() bool {
	return c.signatureRequired
}

func (c *RecordDeliveryAttemptCommand) setDeliveryID(deliveryID kernel.UUID) error {
	if err := deliveryID.Validate(); err != nil {
		return err
	}

	c.deliveryID = deliveryID
	return nil
}

func (c *RecordDeliveryAttemptCommand) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("shipmentId", err)
	}

	c.shipmentID = shipmentID
	return nil
}

func (c *RecordDeliveryAttemptCommand) setRecipient(recipient delivery.Recipient) error {
	if err := recipient.Validate(); err != nil {
		return err
	}

	c.recipient = recipient
	return nil
}
