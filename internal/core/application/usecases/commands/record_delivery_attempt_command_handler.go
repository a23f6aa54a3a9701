package commands

import (
	"context"
	"errors"

	"logistics/internal/core/domain/model/delivery"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
)

// RecordDeliveryAttemptCommandHandler starts a delivery attempt for an
// in-transit shipment. A shipment has a single delivery record across all
// its attempts: the first attempt creates it, later attempts reopen it.
type RecordDeliveryAttemptCommandHandler struct {
	uowFactory DeliveryUoWFactory
	locker     EntityLocker
}

// NewRecordDeliveryAttemptCommandHandler creates a handler for delivery attempts.
func NewRecordDeliveryAttemptCommandHandler(
	uowFactory DeliveryUoWFactory,
	locker EntityLocker,
) RecordDeliveryAttemptCommandHandler {
	return RecordDeliveryAttemptCommandHandler{
		uowFactory: uowFactory,
		locker:     locker,
	}
}

// Handle processes the attempt command and returns the identifier of the
// delivery record, which is the existing record's on a reattempt.
func (h *RecordDeliveryAttemptCommandHandler) Handle(
	ctx context.Context,
	cmd RecordDeliveryAttemptCommand,
) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	unlock := h.locker.Lock(cmd.ShipmentID().String())
	defer unlock()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	shp, err := uow.ShipmentRepository().Get(ctx, cmd.ShipmentID())
	if err != nil {
		return kernel.UUID{}, err
	}

	existing, err := uow.DeliveryRepository().GetByShipment(ctx, cmd.ShipmentID())
	switch {
	case err == nil:
		// StartReattempt runs before the in-transit check: an exhausted
		// cap reports ErrMaxAttemptsExceeded even though the terminal
		// failure has already delayed the shipment.
		if err = existing.StartReattempt(); err != nil {
			return kernel.UUID{}, err
		}
		if err = shp.ValidateInTransit(); err != nil {
			return kernel.UUID{}, err
		}
		if err = uow.DeliveryRepository().Update(ctx, existing); err != nil {
			return kernel.UUID{}, err
		}
		if err = uow.Commit(ctx); err != nil {
			return kernel.UUID{}, err
		}
		return existing.ID(), nil

	case errors.Is(err, errs.ErrObjectNotFound):
		if err = shp.ValidateInTransit(); err != nil {
			return kernel.UUID{}, err
		}
		created, newErr := delivery.NewDelivery(
			cmd.DeliveryID(),
			cmd.ShipmentID(),
			cmd.Recipient(),
			cmd.SignatureRequired(),
		)
		if newErr != nil {
			return kernel.UUID{}, newErr
		}
		if err = uow.DeliveryRepository().Add(ctx, created); err != nil {
			return kernel.UUID{}, err
		}
		if err = uow.Commit(ctx); err != nil {
			return kernel.UUID{}, err
		}
		return created.ID(), nil

	default:
		return kernel.UUID{}, err
	}
}
