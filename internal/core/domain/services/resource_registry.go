package services

import (
	"errors"
	"fmt"

	"logistics/internal/core/domain/model/driver"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/vehicle"
	"logistics/internal/pkg/guard"
)

// Domain errors for resource claims.
var (
	// ErrResourceUnavailable is returned when the driver or the vehicle of a
	// requested pair is already claimed by another shipment.
	ErrResourceUnavailable = errors.New("resource is unavailable")
	// ErrClaimTokenIsNotConstructed is returned when using a ClaimToken that
	// was not issued by the registry.
	ErrClaimTokenIsNotConstructed = errors.New("ClaimToken must be issued by ResourceRegistry.Claim")
	// ErrClaimTokenMismatch is returned when releasing a token against
	// resources it does not reference.
	ErrClaimTokenMismatch = errors.New("claim token does not reference these resources")
)

// ClaimToken is the receipt for an exclusive hold on a driver/vehicle pair.
// It references the pair; the authoritative availability state stays with
// the aggregates.
type ClaimToken struct {
	driverID  kernel.UUID
	vehicleID kernel.UUID

	guard guard.ConstructorGuard
}

// RestoreClaimToken rebuilds the token for a persisted shipment's pair so a
// later terminal transition can release the claim.
func RestoreClaimToken(driverID, vehicleID kernel.UUID) (ClaimToken, error) {
	if err := errors.Join(driverID.Validate(), vehicleID.Validate()); err != nil {
		return ClaimToken{}, err
	}

	return ClaimToken{
		driverID:  driverID,
		vehicleID: vehicleID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the token was issued or restored properly.
func (t ClaimToken) Validate() error {
	return t.guard.Validate(ErrClaimTokenIsNotConstructed)
}

// DriverID returns the claimed driver reference.
func (t ClaimToken) DriverID() kernel.UUID {
	return t.driverID
}

// VehicleID returns the claimed vehicle reference.
func (t ClaimToken) VehicleID() kernel.UUID {
	return t.vehicleID
}

// ResourceRegistry is the domain service owning driver and vehicle
// availability. A claim covers the pair atomically: either both resources
// are free and both become held, or neither is touched.
//
// The registry operates on aggregates loaded inside the caller's unit of
// work; the surrounding transaction plus the caller's per-resource locking
// make the check-and-set safe under concurrent dispatches.
type ResourceRegistry struct{}

// NewResourceRegistry creates a ResourceRegistry.
func NewResourceRegistry() ResourceRegistry {
	return ResourceRegistry{}
}

// Claim atomically acquires the exclusive hold on a driver/vehicle pair.
// If either resource is unavailable it fails with ErrResourceUnavailable
// and claims neither.
func (r ResourceRegistry) Claim(drv *driver.Driver, veh *vehicle.Vehicle) (ClaimToken, error) {
	if err := drv.Validate(); err != nil {
		return ClaimToken{}, err
	}
	if err := veh.Validate(); err != nil {
		return ClaimToken{}, err
	}

	// All-or-nothing: probe both flags before flipping either.
	if !drv.IsAvailable() {
		return ClaimToken{}, fmt.Errorf("%w: driver %s", ErrResourceUnavailable, drv.ID())
	}
	if !veh.IsAvailable() {
		return ClaimToken{}, fmt.Errorf("%w: vehicle %s", ErrResourceUnavailable, veh.ID())
	}

	if err := drv.Claim(); err != nil {
		return ClaimToken{}, fmt.Errorf("%w: %w", ErrResourceUnavailable, err)
	}
	if err := veh.Claim(); err != nil {
		drv.Release()
		return ClaimToken{}, fmt.Errorf("%w: %w", ErrResourceUnavailable, err)
	}

	return ClaimToken{
		driverID:  drv.ID(),
		vehicleID: veh.ID(),
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Release hands both resources of the pair back. Releasing a pair that is
// already available is a no-op, so retried terminal transitions stay safe.
// The token must reference the given aggregates; a mismatch fails rather
// than freeing resources claimed by another shipment.
func (r ResourceRegistry) Release(token ClaimToken, drv *driver.Driver, veh *vehicle.Vehicle) error {
	if err := token.Validate(); err != nil {
		return err
	}
	if err := drv.Validate(); err != nil {
		return err
	}
	if err := veh.Validate(); err != nil {
		return err
	}

	if !token.driverID.IsEqual(drv.ID()) || !token.vehicleID.IsEqual(veh.ID()) {
		return ErrClaimTokenMismatch
	}

	drv.Release()
	veh.Release()
	return nil
}
