// Package route implements the Route entity: a named path between two
// locations with distance and duration estimates used when dispatching
// shipments.
package route

import (
	"errors"
	"fmt"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

// ErrRouteIsNotConstructed is returned when using a Route that was not
// created through NewRoute or RestoreRoute.
var ErrRouteIsNotConstructed = errors.New("Route must be created via NewRoute constructor")

// Route describes a path between a start and an end location. Routes are
// reference data: shipments point at them for distance and duration
// estimates, but never mutate them.
type Route struct {
	id            kernel.UUID
	name          string
	startLocation string
	endLocation   string
	distanceKm    float64
	estimated     time.Duration
	isActive      bool

	guard guard.ConstructorGuard
}

// NewRoute creates an active Route.
func NewRoute(
	id kernel.UUID,
	name string,
	startLocation string,
	endLocation string,
	distanceKm float64,
	estimated time.Duration,
) (*Route, error) {
	r := &Route{
		isActive: true,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		r.setID(id),
		r.setName(name),
		r.setLocations(startLocation, endLocation),
		r.setDistance(distanceKm),
		r.setEstimated(estimated),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// RestoreRoute reconstructs a Route from persistent storage.
func RestoreRoute(
	id kernel.UUID,
	name string,
	startLocation string,
	endLocation string,
	distanceKm float64,
	estimated time.Duration,
	isActive bool,
) (*Route, error) {
	r, err := NewRoute(id, name, startLocation, endLocation, distanceKm, estimated)
	if err != nil {
		return nil, err
	}

	r.isActive = isActive
	return r, nil
}

// Validate ensures the Route was created through a constructor.
func (r *Route) Validate() error {
	if r == nil {
		return ErrRouteIsNotConstructed
	}
	return r.guard.Validate(ErrRouteIsNotConstructed)
}

// ID returns the route's unique identifier.
func (r *Route) ID() kernel.UUID {
	return r.id
}

// Name returns the route name.
func (r *Route) Name() string {
	return r.name
}

// StartLocation returns the route origin.
func (r *Route) StartLocation() string {
	return r.startLocation
}

// EndLocation returns the route destination.
func (r *Route) EndLocation() string {
	return r.endLocation
}

// DistanceKm returns the route distance in kilometers.
func (r *Route) DistanceKm() float64 {
	return r.distanceKm
}

// EstimatedDuration returns the expected travel time.
func (r *Route) EstimatedDuration() time.Duration {
	return r.estimated
}

// IsActive reports whether the route can be used for new shipments.
func (r *Route) IsActive() bool {
	return r.isActive
}

// Deactivate retires the route from new dispatches.
func (r *Route) Deactivate() {
	r.isActive = false
}

func (r *Route) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Route) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("routeName")
	}
	r.name = name
	return nil
}

func (r *Route) setLocations(start, end string) error {
	if start == "" {
		return errs.NewValueIsRequiredError("startLocation")
	}
	if end == "" {
		return errs.NewValueIsRequiredError("endLocation")
	}
	r.startLocation = start
	r.endLocation = end
	return nil
}

func (r *Route) setDistance(distanceKm float64) error {
	if distanceKm <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"distanceKm", fmt.Errorf("%v is not greater than 0", distanceKm))
	}
	r.distanceKm = distanceKm
	return nil
}

func (r *Route) setEstimated(estimated time.Duration) error {
	if estimated <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"estimatedDuration", fmt.Errorf("%s is not greater than 0", estimated))
	}
	r.estimated = estimated
	return nil
}
