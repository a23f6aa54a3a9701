package ports

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
)

// ShipmentRepository defines the persistence contract for shipment aggregates.
type ShipmentRepository interface {
	// Add persists a new shipment aggregate to storage.
	Add(ctx context.Context, aggregate *shipment.Shipment) error

	// Update persists changes to an existing shipment aggregate.
	Update(ctx context.Context, aggregate *shipment.Shipment) error

	// Get retrieves a shipment aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error)

	// GetActiveByOrder retrieves the non-terminal shipment bound to an order,
	// if any. At most one active shipment exists per order.
	GetActiveByOrder(ctx context.Context, orderID kernel.UUID) (*shipment.Shipment, error)

	// GetAllOverdueInTransit retrieves shipments still in transit past their
	// expected arrival time. Used by the delay watchdog.
	GetAllOverdueInTransit(ctx context.Context) ([]*shipment.Shipment, error)
}
