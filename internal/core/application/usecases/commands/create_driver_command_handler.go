package commands

import (
	"context"

	"logistics/internal/core/domain/model/driver"
)

// CreateDriverCommandHandler handles driver registration.
type CreateDriverCommandHandler struct {
	uowFactory DriverUoWFactory
}

// NewCreateDriverCommandHandler creates a handler for driver registration.
func NewCreateDriverCommandHandler(uowFactory DriverUoWFactory) CreateDriverCommandHandler {
	return CreateDriverCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the driver registration command.
func (h *CreateDriverCommandHandler) Handle(ctx context.Context, cmd CreateDriverCommand) error {
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

	aggregate, err := driver.NewDriver(
		cmd.DriverID(),
		cmd.EmployeeID(),
		cmd.LicenseNumber(),
		cmd.LicenseExpiry(),
		cmd.ExperienceYears(),
	)
	if err != nil {
		return err
	}

	if err = uow.DriverRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
