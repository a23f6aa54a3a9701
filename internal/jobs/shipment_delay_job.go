package jobs

import (
	"context"
	"errors"
	"log/slog"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/pkg/errs"

	"github.com/robfig/cron/v3"
)

// ShipmentDelayJob watches for in-transit shipments past their expected
// arrival time and flags them as delayed. Runs every minute.
type ShipmentDelayJob struct {
	uowFactory commands.ShipmentUoWFactory
	handler    commands.AdvanceShipmentCommandHandler
	cron       *cron.Cron
	logger     *slog.Logger
}

// NewShipmentDelayJob creates the delay watchdog. The unit of work factory
// supplies the overdue scan; each flagged shipment goes through the regular
// advance handler so locking and order bookkeeping apply.
func NewShipmentDelayJob(
	uowFactory commands.ShipmentUoWFactory,
	handler commands.AdvanceShipmentCommandHandler,
	logger *slog.Logger,
) *ShipmentDelayJob {
	return &ShipmentDelayJob{
		uowFactory: uowFactory,
		handler:    handler,
		cron:       cron.New(),
		logger:     logger.With("component", "shipment_delay_job"),
	}
}

// Start begins the delay scan on a one-minute schedule.
func (j *ShipmentDelayJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()
		if err := j.run(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Shipment delay scan failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Shipment delay job started (running every minute)")
	return nil
}

// Stop stops the delay scan.
func (j *ShipmentDelayJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Shipment delay job stopped")
}

func (j *ShipmentDelayJob) run(ctx context.Context) error {
	uow := j.uowFactory.Create()

	overdue, err := uow.ShipmentRepository().GetAllOverdueInTransit(ctx)
	if err != nil {
		return err
	}

	for _, shp := range overdue {
		cmd, cmdErr := commands.NewAdvanceShipmentCommand(shp.ID(), shipment.Delayed, 0)
		if cmdErr != nil {
			return cmdErr
		}

		if handleErr := j.handler.Handle(ctx, cmd); handleErr != nil {
			// The shipment may have been delivered or cancelled between the
			// scan and the transition. That race is not a failure.
			if errors.Is(handleErr, shipment.ErrInvalidTransition) ||
				errors.Is(handleErr, errs.ErrObjectNotFound) {
				continue
			}

			j.logger.ErrorContext(ctx, "Failed to flag overdue shipment",
				"shipment_id", shp.ID().String(), "error", handleErr)
		} else {
			j.logger.InfoContext(ctx, "Flagged overdue shipment as delayed",
				"shipment_id", shp.ID().String())
		}
	}

	return nil
}
