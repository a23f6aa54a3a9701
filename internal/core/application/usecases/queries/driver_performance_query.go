package queries

import (
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrDriverPerformanceQueryIsNotConstructed = errors.New(
	"DriverPerformanceQuery must be created via NewDriverPerformanceQuery constructor",
)

// DriverPerformanceQuery retrieves per-driver shipment statistics.
type DriverPerformanceQuery struct {
	guard guard.ConstructorGuard
}

// NewDriverPerformanceQuery creates a query for driver statistics.
func NewDriverPerformanceQuery() DriverPerformanceQuery {
	return DriverPerformanceQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q DriverPerformanceQuery) Validate() error {
	return q.guard.Validate(ErrDriverPerformanceQueryIsNotConstructed)
}

// DriverPerformanceView aggregates one driver's shipment history. Drivers
// with no shipments appear with zero counts.
type DriverPerformanceView struct {
	DriverID           kernel.UUID
	LicenseNumber      string
	Rating             float64
	TotalShipments     int64
	DeliveredShipments int64
	TotalDistanceKm    float64
}

// DriverPerformanceQueryResponse carries the statistics for every driver.
type DriverPerformanceQueryResponse struct {
	Data []DriverPerformanceView
}
