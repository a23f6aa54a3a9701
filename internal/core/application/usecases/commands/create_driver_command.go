package commands

import (
	"errors"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var (
	ErrCreateDriverCommandIsNotConstructed = errors.New(
		"CreateDriverCommand must be created via NewCreateDriverCommand constructor",
	)
	ErrLicenseNumberIsRequired = errs.NewValueIsRequiredError("licenseNumber")
)

// CreateDriverCommand represents a request to register a new driver resource.
// New drivers are registered available.
type CreateDriverCommand struct { //nolint:recvcheck //using for validation
	driverID        kernel.UUID
	employeeID      kernel.UUID
	licenseNumber   string
	licenseExpiry   time.Time
	experienceYears int

	guard guard.ConstructorGuard
}

// NewCreateDriverCommand creates a command to register a new driver.
func NewCreateDriverCommand(
	driverID kernel.UUID,
	employeeID kernel.UUID,
	licenseNumber string,
	licenseExpiry time.Time,
	experienceYears int,
) (CreateDriverCommand, error) {
	cmd := CreateDriverCommand{
		licenseExpiry:   licenseExpiry,
		experienceYears: experienceYears,
		guard:           guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDriverID(driverID),
		cmd.setEmployeeID(employeeID),
		cmd.setLicenseNumber(licenseNumber),
	); err != nil {
		return CreateDriverCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateDriverCommand) Validate() error {
	return c.guard.Validate(ErrCreateDriverCommandIsNotConstructed)
}

// DriverID returns the driver's unique identifier.
func (c CreateDriverCommand) DriverID() kernel.UUID {
	return c.driverID
}

// EmployeeID returns the person record reference.
func (c CreateDriverCommand) EmployeeID() kernel.UUID {
	return c.employeeID
}

// LicenseNumber returns the driver's license number.
func (c CreateDriverCommand) LicenseNumber() string {
	return c.licenseNumber
}

// LicenseExpiry returns the end of the license validity window.
func (c CreateDriverCommand) LicenseExpiry() time.Time {
	return c.licenseExpiry
}

// ExperienceYears returns the driver's years of experience.
func (c CreateDriverCommand) ExperienceYears() int {
	return c.experienceYears
}

func (c *CreateDriverCommand) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	c.driverID = driverID
	return nil
}

func (c *CreateDriverCommand) setEmployeeID(employeeID kernel.UUID) error {
	if err := employeeID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("employeeId", err)
	}

	c.employeeID = employeeID
	return nil
}

func (c *CreateDriverCommand) setLicenseNumber(licenseNumber string) error {
	if licenseNumber == "" {
		return ErrLicenseNumberIsRequired
	}

	c.licenseNumber = licenseNumber
	return nil
}
