package queries

import (
	"errors"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrGetRoutesQueryIsNotConstructed = errors.New(
	"GetRoutesQuery must be created via NewGetRoutesQuery constructor",
)

// GetRoutesQuery retrieves routes, optionally only the ones open for
// dispatch.
type GetRoutesQuery struct {
	activeOnly bool

	guard guard.ConstructorGuard
}

// NewGetRoutesQuery creates a query for the route catalog.
func NewGetRoutesQuery(activeOnly bool) GetRoutesQuery {
	return GetRoutesQuery{
		activeOnly: activeOnly,
		guard:      guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q GetRoutesQuery) Validate() error {
	return q.guard.Validate(ErrGetRoutesQueryIsNotConstructed)
}

// ActiveOnly reports whether deactivated routes are filtered out.
func (q GetRoutesQuery) ActiveOnly() bool {
	return q.activeOnly
}

// RouteView is the route read model.
type RouteView struct {
	ID                kernel.UUID
	Name              string
	StartLocation     string
	EndLocation       string
	DistanceKm        float64
	EstimatedDuration time.Duration
	IsActive          bool
}

// GetRoutesQueryResponse carries the route catalog with its row count.
type GetRoutesQueryResponse struct {
	Total int64
	Data  []RouteView
}
