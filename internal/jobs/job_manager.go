package jobs

import (
	"fmt"
	"log/slog"

	"logistics/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	shipmentDelayJob *ShipmentDelayJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	shipmentUoWFactory commands.ShipmentUoWFactory,
	advanceShipmentHandler commands.AdvanceShipmentCommandHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		shipmentDelayJob: NewShipmentDelayJob(shipmentUoWFactory, advanceShipmentHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.shipmentDelayJob.Start(); err != nil {
		return fmt.Errorf("failed to start shipment delay job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.shipmentDelayJob.Stop()
}
