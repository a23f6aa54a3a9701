package vehicle

import (
	"errors"
	"fmt"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

// Domain errors for vehicle operations.
var (
	// ErrVehicleIsNotConstructed is returned when using a Vehicle that was
	// not created through NewVehicle or RestoreVehicle.
	ErrVehicleIsNotConstructed = errors.New("Vehicle must be created via NewVehicle constructor")
	// ErrLicensePlateIsRequired is returned when the license plate is empty.
	ErrLicensePlateIsRequired = errs.NewValueIsRequiredError("licensePlate")
	// ErrVehicleNotAvailable is returned when claiming a vehicle that is
	// already held by another shipment.
	ErrVehicleNotAvailable = errors.New("vehicle is not available")
)

// Capacity is the load capacity of a vehicle in weight and volume.
type Capacity struct {
	WeightKg     float64
	VolumeCubicM float64
}

// Validate checks both capacity dimensions are positive.
func (c Capacity) Validate() error {
	if c.WeightKg <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"capacityKg", fmt.Errorf("%v is not greater than 0", c.WeightKg))
	}
	if c.VolumeCubicM <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"capacityCubicM", fmt.Errorf("%v is not greater than 0", c.VolumeCubicM))
	}
	return nil
}

// Vehicle is the aggregate root for a vehicle resource, identified by a
// unique license plate.
//
// The availability flag carries the same invariant as the driver's: owned by
// the resource registry, false exactly while a non-terminal shipment holds
// the vehicle, mutated only through Claim and Release.
type Vehicle struct {
	id           kernel.UUID
	licensePlate string
	vehicleType  string
	brand        string
	model        string
	year         int
	capacity     Capacity
	mileageKm    int
	isAvailable  bool

	guard guard.ConstructorGuard
}

// NewVehicle creates an available Vehicle.
func NewVehicle(
	id kernel.UUID,
	licensePlate string,
	vehicleType string,
	brand string,
	model string,
	year int,
	capacity Capacity,
) (*Vehicle, error) {
	v := &Vehicle{
		isAvailable: true,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		v.setID(id),
		v.setLicensePlate(licensePlate),
		v.setVehicleType(vehicleType),
		v.setCapacity(capacity),
	); err != nil {
		return nil, err
	}

	v.brand = brand
	v.model = model
	v.year = year
	return v, nil
}

// RestoreVehicle reconstructs a Vehicle from persistent storage, including
// its mileage and availability at the time of persistence.
func RestoreVehicle(
	id kernel.UUID,
	licensePlate string,
	vehicleType string,
	brand string,
	model string,
	year int,
	capacity Capacity,
	mileageKm int,
	isAvailable bool,
) (*Vehicle, error) {
	v, err := NewVehicle(id, licensePlate, vehicleType, brand, model, year, capacity)
	if err != nil {
		return nil, err
	}

	v.mileageKm = mileageKm
	v.isAvailable = isAvailable
	return v, nil
}

// Validate ensures the Vehicle was created through a constructor.
func (v *Vehicle) Validate() error {
	if v == nil {
		return ErrVehicleIsNotConstructed
	}
	return v.guard.Validate(ErrVehicleIsNotConstructed)
}

// IsEqual compares two vehicles by identity.
func (v *Vehicle) IsEqual(other *Vehicle) bool {
	return other != nil && v.id.IsEqual(other.id)
}

// ID returns the vehicle's unique identifier.
func (v *Vehicle) ID() kernel.UUID {
	return v.id
}

// LicensePlate returns the unique license plate.
func (v *Vehicle) LicensePlate() string {
	return v.licensePlate
}

// VehicleType returns the vehicle category (van, truck, ...).
func (v *Vehicle) VehicleType() string {
	return v.vehicleType
}

// Brand returns the manufacturer name.
func (v *Vehicle) Brand() string {
	return v.brand
}

// Model returns the vehicle model name.
func (v *Vehicle) Model() string {
	return v.model
}

// Year returns the build year.
func (v *Vehicle) Year() int {
	return v.year
}

// Capacity returns the load capacity.
func (v *Vehicle) Capacity() Capacity {
	return v.capacity
}

// MileageKm returns the recorded mileage.
func (v *Vehicle) MileageKm() int {
	return v.mileageKm
}

// IsAvailable reports whether the vehicle can be claimed for a new shipment.
func (v *Vehicle) IsAvailable() bool {
	return v.isAvailable
}

// Claim marks the vehicle unavailable. Fails with ErrVehicleNotAvailable if
// the vehicle is already claimed.
func (v *Vehicle) Claim() error {
	if !v.isAvailable {
		return fmt.Errorf("%w: %s", ErrVehicleNotAvailable, v.id)
	}
	v.isAvailable = false
	return nil
}

// Release marks the vehicle available again. Releasing an already available
// vehicle is a no-op.
func (v *Vehicle) Release() {
	v.isAvailable = true
}

// AddMileage records distance traveled on a completed trip.
func (v *Vehicle) AddMileage(km int) error {
	if km < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"mileageKm", fmt.Errorf("%d is negative", km))
	}
	v.mileageKm += km
	return nil
}

func (v *Vehicle) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	v.id = id
	return nil
}

func (v *Vehicle) setLicensePlate(plate string) error {
	if plate == "" {
		return ErrLicensePlateIsRequired
	}
	v.licensePlate = plate
	return nil
}

func (v *Vehicle) setVehicleType(vehicleType string) error {
	if vehicleType == "" {
		return errs.NewValueIsRequiredError("vehicleType")
	}
	v.vehicleType = vehicleType
	return nil
}

func (v *Vehicle) setCapacity(capacity Capacity) error {
	if err := capacity.Validate(); err != nil {
		return err
	}
	v.capacity = capacity
	return nil
}
