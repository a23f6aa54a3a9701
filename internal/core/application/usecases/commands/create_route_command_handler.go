package commands

import (
	"context"

	"logistics/internal/core/domain/model/route"
)

// CreateRouteCommandHandler handles route registration.
type CreateRouteCommandHandler struct {
	uowFactory RouteUoWFactory
}

// NewCreateRouteCommandHandler creates a handler for route registration.
func NewCreateRouteCommandHandler(uowFactory RouteUoWFactory) CreateRouteCommandHandler {
	return CreateRouteCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the route registration command.
func (h *CreateRouteCommandHandler) Handle(ctx context.Context, cmd CreateRouteCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := route.NewRoute(
		cmd.RouteID(),
		cmd.Name(),
		cmd.StartLocation(),
		cmd.EndLocation(),
		cmd.DistanceKm(),
		cmd.EstimatedDuration(),
	)
	if err != nil {
		return err
	}

	if err = uow.RouteRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
