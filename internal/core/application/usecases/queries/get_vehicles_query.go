package queries

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrGetVehiclesQueryIsNotConstructed = errors.New(
	"GetVehiclesQuery must be created via NewGetVehiclesQuery constructor",
)

// GetVehiclesQuery retrieves vehicles, optionally only the ones free for a
// new claim.
type GetVehiclesQuery struct {
	availableOnly bool

	guard guard.ConstructorGuard
}

// NewGetVehiclesQuery creates a query for the vehicle fleet.
func NewGetVehiclesQuery(availableOnly bool) GetVehiclesQuery {
	return GetVehiclesQuery{
		availableOnly: availableOnly,
		guard:         guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q GetVehiclesQuery) Validate() error {
	return q.guard.Validate(ErrGetVehiclesQueryIsNotConstructed)
}

// AvailableOnly reports whether claimed vehicles are filtered out.
func (q GetVehiclesQuery) AvailableOnly() bool {
	return q.availableOnly
}

// VehicleView is the vehicle read model.
type VehicleView struct {
	ID              kernel.UUID
	LicensePlate    string
	VehicleType     string
	Brand           string
	Model           string
	Year            int
	CapacityKg      float64
	CapacityCubicM  float64
	MileageKm       int
	IsAvailable     bool
}

// GetVehiclesQueryResponse carries the vehicle fleet with its row count.
type GetVehiclesQueryResponse struct {
	Total int64
	Data  []VehicleView
}
