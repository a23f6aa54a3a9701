package commands

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/vehicle"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var (
	ErrCreateVehicleCommandIsNotConstructed = errors.New(
		"CreateVehicleCommand must be created via NewCreateVehicleCommand constructor",
	)
	ErrLicensePlateIsRequired = errs.NewValueIsRequiredError("licensePlate")
)

// CreateVehicleCommand represents a request to register a new vehicle
// resource. New vehicles are registered available with zero mileage.
type CreateVehicleCommand struct { //nolint:recvcheck //using for validation
	vehicleID    kernel.UUID
	licensePlate string
	vehicleType  string
	brand        string
	model        string
	year         int
	capacity     vehicle.Capacity

	guard guard.ConstructorGuard
}

// NewCreateVehicleCommand creates a command to register a new vehicle.
func NewCreateVehicleCommand(
	vehicleID kernel.UUID,
	licensePlate string,
	vehicleType string,
	brand string,
	model string,
	year int,
	capacity vehicle.Capacity,
) (CreateVehicleCommand, error) {
	cmd := CreateVehicleCommand{
		vehicleType: vehicleType,
		brand:       brand,
		model:       model,
		year:        year,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setVehicleID(vehicleID),
		cmd.setLicensePlate(licensePlate),
		cmd.setCapacity(capacity),
	); err != nil {
		return CreateVehicleCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateVehicleCommand) Validate() error {
	return c.guard.Validate(ErrCreateVehicleCommandIsNotConstructed)
}

// VehicleID returns the vehicle's unique identifier.
func (c CreateVehicleCommand) VehicleID() kernel.UUID {
	return c.vehicleID
}

// LicensePlate returns the vehicle's license plate.
func (c CreateVehicleCommand) LicensePlate() string {
	return c.licensePlate
}

// VehicleType returns the vehicle type.
func (c CreateVehicleCommand) VehicleType() string {
	return c.vehicleType
}

// Brand returns the manufacturer brand.
func (c CreateVehicleCommand) Brand() string {
	return c.brand
}

// Model returns the vehicle model.
func (c CreateVehicleCommand) Model() string {
	return c.model
}

// Year returns the manufacture year.
func (c CreateVehicleCommand) Year() int {
	return c.year
}

// Capacity returns the load capacity.
func (c CreateVehicleCommand) Capacity() vehicle.Capacity {
	return c.capacity
}

func (c *CreateVehicleCommand) setVehicleID(vehicleID kernel.UUID) error {
	if err := vehicleID.Validate(); err != nil {
		return err
	}

	c.vehicleID = vehicleID
	return nil
}

func (c *CreateVehicleCommand) setLicensePlate(licensePlate string) error {
	if licensePlate == "" {
		return ErrLicensePlateIsRequired
	}

	c.licensePlate = licensePlate
	return nil
}

func (c *CreateVehicleCommand) setCapacity(capacity vehicle.Capacity) error {
	if err := capacity.Validate(); err != nil {
		return err
	}

	c.capacity = capacity
	return nil
}
