package driver

import (
	"errors"
	"fmt"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

const (
	// defaultRating is the rating assigned to drivers with no delivery
	// history. It is a defined placeholder, not a computed average.
	defaultRating = 5.0

	ratingMin = 0.0
	ratingMax = 5.0
)

// Domain errors for driver operations.
var (
	// ErrDriverIsNotConstructed is returned when using a Driver that was not
	// created through NewDriver or RestoreDriver.
	ErrDriverIsNotConstructed = errors.New("Driver must be created via NewDriver constructor")
	// ErrLicenseNumberIsRequired is returned when the license number is empty.
	ErrLicenseNumberIsRequired = errs.NewValueIsRequiredError("licenseNumber")
	// ErrDriverNotAvailable is returned when claiming a driver that is
	// already held by another shipment.
	ErrDriverNotAvailable = errors.New("driver is not available")
)

// Driver is the aggregate root for a driver resource. A driver is linked 1:1
// to a person record (employee) and carries licensing data, experience and a
// rating bounded to [0, 5].
//
// The availability flag is owned by the resource registry: it is false
// exactly while the driver is claimed by a non-terminal shipment, and it is
// mutated only through Claim and Release.
type Driver struct {
	id              kernel.UUID
	employeeID      kernel.UUID
	licenseNumber   string
	licenseExpiry   time.Time
	experienceYears int
	rating          float64
	isAvailable     bool

	guard guard.ConstructorGuard
}

// NewDriver creates an available Driver with the default rating.
func NewDriver(
	id kernel.UUID,
	employeeID kernel.UUID,
	licenseNumber string,
	licenseExpiry time.Time,
	experienceYears int,
) (*Driver, error) {
	d := &Driver{
		rating:      defaultRating,
		isAvailable: true,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setID(id),
		d.setEmployeeID(employeeID),
		d.setLicense(licenseNumber, licenseExpiry),
		d.setExperienceYears(experienceYears),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// RestoreDriver reconstructs a Driver from persistent storage, including its
// rating and availability at the time of persistence.
func RestoreDriver(
	id kernel.UUID,
	employeeID kernel.UUID,
	licenseNumber string,
	licenseExpiry time.Time,
	experienceYears int,
	rating float64,
	isAvailable bool,
) (*Driver, error) {
	d, err := NewDriver(id, employeeID, licenseNumber, licenseExpiry, experienceYears)
	if err != nil {
		return nil, err
	}

	if err = d.setRating(rating); err != nil {
		return nil, err
	}
	d.isAvailable = isAvailable

	return d, nil
}

// Validate ensures the Driver was created through a constructor.
func (d *Driver) Validate() error {
	if d == nil {
		return ErrDriverIsNotConstructed
	}
	return d.guard.Validate(ErrDriverIsNotConstructed)
}

// IsEqual compares two drivers by identity.
func (d *Driver) IsEqual(other *Driver) bool {
	return other != nil && d.id.IsEqual(other.id)
}

// ID returns the driver's unique identifier.
func (d *Driver) ID() kernel.UUID {
	return d.id
}

// EmployeeID returns the reference to the driver's person record.
func (d *Driver) EmployeeID() kernel.UUID {
	return d.employeeID
}

// LicenseNumber returns the driver's license number.
func (d *Driver) LicenseNumber() string {
	return d.licenseNumber
}

// LicenseExpiry returns the end of the license validity window.
func (d *Driver) LicenseExpiry() time.Time {
	return d.licenseExpiry
}

// ExperienceYears returns the driver's years of experience.
func (d *Driver) ExperienceYears() int {
	return d.experienceYears
}

// Rating returns the driver's rating in [0, 5].
func (d *Driver) Rating() float64 {
	return d.rating
}

// IsAvailable reports whether the driver can be claimed for a new shipment.
func (d *Driver) IsAvailable() bool {
	return d.isAvailable
}

// Claim marks the driver unavailable. Fails with ErrDriverNotAvailable if
// the driver is already claimed.
func (d *Driver) Claim() error {
	if !d.isAvailable {
		return fmt.Errorf("%w: %s", ErrDriverNotAvailable, d.id)
	}
	d.isAvailable = false
	return nil
}

// Release marks the driver available again. Releasing an already available
// driver is a no-op, which keeps terminal-state retries harmless.
func (d *Driver) Release() {
	d.isAvailable = true
}

func (d *Driver) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Driver) setEmployeeID(employeeID kernel.UUID) error {
	if err := employeeID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("employeeId", err)
	}
	d.employeeID = employeeID
	return nil
}

func (d *Driver) setLicense(licenseNumber string, licenseExpiry time.Time) error {
	if licenseNumber == "" {
		return ErrLicenseNumberIsRequired
	}
	if licenseExpiry.IsZero() {
		return errs.NewValueIsRequiredError("licenseExpiry")
	}
	d.licenseNumber = licenseNumber
	d.licenseExpiry = licenseExpiry
	return nil
}

func (d *Driver) setExperienceYears(years int) error {
	if years < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"experienceYears", fmt.Errorf("%d is negative", years))
	}
	d.experienceYears = years
	return nil
}

func (d *Driver) setRating(rating float64) error {
	if rating < ratingMin || rating > ratingMax {
		return errs.NewValueIsOutOfRangeError("rating", rating, ratingMin, ratingMax)
	}
	d.rating = rating
	return nil
}
