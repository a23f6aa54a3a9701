package ports

import (
	"context"

	"logistics/internal/core/domain/model/delivery"
	"logistics/internal/core/domain/model/kernel"
)

// DeliveryRepository defines the persistence contract for delivery aggregates.
type DeliveryRepository interface {
	// Add persists a new delivery aggregate to storage.
	Add(ctx context.Context, aggregate *delivery.Delivery) error

	// Update persists changes to an existing delivery aggregate.
	Update(ctx context.Context, aggregate *delivery.Delivery) error

	// Get retrieves a delivery aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error)

	// GetByShipment retrieves the delivery bound to a shipment, if any.
	// A shipment has at most one delivery record across all its attempts.
	GetByShipment(ctx context.Context, shipmentID kernel.UUID) (*delivery.Delivery, error)
}
