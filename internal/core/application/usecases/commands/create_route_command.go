package commands

import (
	"errors"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrCreateRouteCommandIsNotConstructed = errors.New(
	"CreateRouteCommand must be created via NewCreateRouteCommand constructor",
)

// CreateRouteCommand represents a request to register a new active route.
type CreateRouteCommand struct { //nolint:recvcheck //using for validation
	routeID           kernel.UUID
	name              string
	startLocation     string
	endLocation       string
	distanceKm        float64
	estimatedDuration time.Duration

	guard guard.ConstructorGuard
}

// NewCreateRouteCommand creates a command to register a new route. Distance
// and duration bounds are enforced by the aggregate.
func NewCreateRouteCommand(
	routeID kernel.UUID,
	name string,
	startLocation string,
	endLocation string,
	distanceKm float64,
	estimatedDuration time.Duration,
) (CreateRouteCommand, error) {
	cmd := CreateRouteCommand{
		startLocation:     startLocation,
		endLocation:       endLocation,
		distanceKm:        distanceKm,
		estimatedDuration: estimatedDuration,
		guard:             guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRouteID(routeID),
		cmd.setName(name),
	); err != nil {
		return CreateRouteCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateRouteCommand) Validate() error {
	return c.guard.Validate(ErrCreateRouteCommandIsNotConstructed)
}

// RouteID returns the route's unique identifier.
func (c CreateRouteCommand) RouteID() kernel.UUID {
	return c.routeID
}

// Name returns the route name.
func (c CreateRouteCommand) Name() string {
	return c.name
}

// StartLocation returns the route origin.
func (c CreateRouteCommand) StartLocation() string {
	return c.startLocation
}

// EndLocation returns the route destination.
func (c CreateRouteCommand) EndLocation() string {
	return c.endLocation
}

// DistanceKm returns the route length in kilometers.
func (c CreateRouteCommand) DistanceKm() float64 {
	return c.distanceKm
}

// EstimatedDuration returns the expected travel time.
func (c CreateRouteCommand) EstimatedDuration() time.Duration {
	return c.estimatedDuration
}

func (c *CreateRouteCommand) setRouteID(routeID kernel.UUID) error {
	if err := routeID.Validate(); err != nil {
		return err
	}

	c.routeID = routeID
	return nil
}

func (c *CreateRouteCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}
