package ports

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/route"
)

// RouteRepository defines the persistence contract for routes.
type RouteRepository interface {
	// Add persists a new route to storage.
	Add(ctx context.Context, aggregate *route.Route) error

	// Update persists changes to an existing route.
	Update(ctx context.Context, aggregate *route.Route) error

	// Get retrieves a route by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*route.Route, error)
}
