package delivery

import (
	"errors"
	"fmt"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

// MaxAttempts is the policy cap on delivery attempts. After this many
// failures the delivery is terminally failed and the shipment is flagged
// for manual intervention.
const MaxAttempts = 3

// Domain errors for delivery operations.
var (
	// ErrDeliveryIsNotConstructed is returned when using a Delivery that was
	// not created through NewDelivery or RestoreDelivery.
	ErrDeliveryIsNotConstructed = errors.New("Delivery must be created via NewDelivery constructor")
	// ErrSignatureRequired is returned when completing a delivery without a
	// signature the recipient contract demands.
	ErrSignatureRequired = errors.New("signature is required to complete this delivery")
	// ErrMaxAttemptsExceeded is returned when starting another attempt after
	// the attempt cap was reached.
	ErrMaxAttemptsExceeded = errors.New("maximum delivery attempts exceeded")
)

// Recipient carries the delivery destination contact details.
type Recipient struct {
	Name    string
	Phone   string
	Address string
	City    string
}

// Validate checks the mandatory recipient fields.
func (r Recipient) Validate() error {
	if r.Name == "" {
		return errs.NewValueIsRequiredError("recipientName")
	}
	if r.Phone == "" {
		return errs.NewValueIsRequiredError("recipientPhone")
	}
	if r.Address == "" {
		return errs.NewValueIsRequiredError("recipientAddress")
	}
	if r.City == "" {
		return errs.NewValueIsRequiredError("recipientCity")
	}
	return nil
}

// Delivery is the aggregate root recording attempts to hand goods to the
// recipient of a shipment.
//
// Invariants:
//   - The attempt counter increments on every Failed -> Reattempt cycle and
//     never exceeds MaxAttempts.
//   - signatureObtained is only set on the Delivered transition, and a
//     required signature must be obtained for that transition to succeed.
type Delivery struct {
	id                kernel.UUID
	shipmentID        kernel.UUID
	recipient         Recipient
	deliveryTime      *time.Time
	signatureRequired bool
	signatureObtained bool
	signatureDate     *time.Time
	notes             string
	status            Status
	attempts          int

	guard guard.ConstructorGuard
}

// NewDelivery creates a Delivery for a departed shipment with its first
// attempt already in progress (status InTransit, attempts 1).
func NewDelivery(
	id kernel.UUID,
	shipmentID kernel.UUID,
	recipient Recipient,
	signatureRequired bool,
) (*Delivery, error) {
	d := &Delivery{
		status:            InTransit,
		attempts:          1,
		signatureRequired: signatureRequired,
		guard:             guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setID(id),
		d.setShipmentID(shipmentID),
		d.setRecipient(recipient),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// RestoreDelivery reconstructs a Delivery from persistent storage.
func RestoreDelivery(
	id kernel.UUID,
	shipmentID kernel.UUID,
	recipient Recipient,
	signatureRequired bool,
	signatureObtained bool,
	signatureDate *time.Time,
	deliveryTime *time.Time,
	notes string,
	status Status,
	attempts int,
) (*Delivery, error) {
	d, err := NewDelivery(id, shipmentID, recipient, signatureRequired)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}
	if attempts < 0 || attempts > MaxAttempts {
		return nil, errs.NewValueIsOutOfRangeError("attempts", attempts, 0, MaxAttempts)
	}

	d.status = status
	d.attempts = attempts
	d.signatureObtained = signatureObtained
	d.signatureDate = signatureDate
	d.deliveryTime = deliveryTime
	d.notes = notes

	return d, nil
}

// Validate ensures the Delivery was created through a constructor.
func (d *Delivery) Validate() error {
	if d == nil {
		return ErrDeliveryIsNotConstructed
	}
	return d.guard.Validate(ErrDeliveryIsNotConstructed)
}

// ID returns the delivery's unique identifier.
func (d *Delivery) ID() kernel.UUID {
	return d.id
}

// ShipmentID returns the reference to the delivered shipment.
func (d *Delivery) ShipmentID() kernel.UUID {
	return d.shipmentID
}

// Recipient returns the destination contact details.
func (d *Delivery) Recipient() Recipient {
	return d.recipient
}

// DeliveryTime returns the successful hand-over time, nil until Delivered.
func (d *Delivery) DeliveryTime() *time.Time {
	return d.deliveryTime
}

// SignatureRequired reports whether the recipient must sign.
func (d *Delivery) SignatureRequired() bool {
	return d.signatureRequired
}

// SignatureObtained reports whether a signature was collected. Only ever
// true after a Delivered transition.
func (d *Delivery) SignatureObtained() bool {
	return d.signatureObtained
}

// SignatureDate returns when the signature was collected.
func (d *Delivery) SignatureDate() *time.Time {
	return d.signatureDate
}

// Notes returns the accumulated delivery notes.
func (d *Delivery) Notes() string {
	return d.notes
}

// Status returns the current attempt-cycle status.
func (d *Delivery) Status() Status {
	return d.status
}

// Attempts returns the number of attempts started so far.
func (d *Delivery) Attempts() int {
	return d.attempts
}

// IsTerminallyFailed reports whether the delivery failed with no attempts
// remaining.
func (d *Delivery) IsTerminallyFailed() bool {
	return d.status == Failed && d.attempts >= MaxAttempts
}

// StartReattempt begins a follow-up attempt after a failure, incrementing
// the attempt counter. Fails with ErrMaxAttemptsExceeded once the cap is
// reached and with ErrInvalidTransition from any status but Failed.
func (d *Delivery) StartReattempt() error {
	if d.status != Failed {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, d.status, Reattempt)
	}
	if d.attempts >= MaxAttempts {
		return fmt.Errorf("%w: %d attempts used", ErrMaxAttemptsExceeded, d.attempts)
	}

	d.status = Reattempt
	d.attempts++
	return nil
}

// Complete finishes the delivery successfully. A required signature must be
// obtained (ErrSignatureRequired otherwise); the signature flags are set
// only here, on the Delivered transition.
func (d *Delivery) Complete(signatureObtained bool) error {
	if !d.status.IsAttemptInProgress() {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, d.status, Delivered)
	}
	if d.signatureRequired && !signatureObtained {
		return ErrSignatureRequired
	}

	now := time.Now().UTC()
	d.status = Delivered
	d.deliveryTime = &now
	d.signatureObtained = signatureObtained
	if signatureObtained {
		d.signatureDate = &now
	}
	return nil
}

// Fail records an unsuccessful attempt with a reason. The delivery becomes
// terminally failed once the attempt cap is used up.
func (d *Delivery) Fail(reason string) error {
	if !d.status.IsAttemptInProgress() {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, d.status, Failed)
	}

	d.status = Failed
	if reason != "" {
		if d.notes != "" {
			d.notes += "; "
		}
		d.notes += fmt.Sprintf("attempt %d failed: %s", d.attempts, reason)
	}
	return nil
}

func (d *Delivery) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Delivery) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("shipmentId", err)
	}
	d.shipmentID = shipmentID
	return nil
}

func (d *Delivery) setRecipient(recipient Recipient) error {
	if err := recipient.Validate(); err != nil {
		return err
	}
	d.recipient = recipient
	return nil
}
