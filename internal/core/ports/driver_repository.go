package ports

import (
	"context"

	"logistics/internal/core/domain/model/driver"
	"logistics/internal/core/domain/model/kernel"
)

// DriverRepository defines the persistence contract for driver aggregates.
// Availability is part of the persisted state: dispatch claims and terminal
// releases go through Update inside the same transaction as the shipment.
type DriverRepository interface {
	// Add persists a new driver aggregate to storage.
	Add(ctx context.Context, aggregate *driver.Driver) error

	// Update persists changes to an existing driver aggregate.
	Update(ctx context.Context, aggregate *driver.Driver) error

	// Get retrieves a driver aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*driver.Driver, error)

	// GetAllAvailable retrieves all drivers not claimed by an active shipment.
	GetAllAvailable(ctx context.Context) ([]*driver.Driver, error)
}
