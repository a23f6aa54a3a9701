package queries

import (
	"errors"
	"fmt"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrGetShipmentsQueryIsNotConstructed = errors.New(
	"GetShipmentsQuery must be created via NewGetShipmentsQuery constructor",
)

// GetShipmentsQuery retrieves a page of shipments, optionally narrowed to a
// single status.
type GetShipmentsQuery struct { //nolint:recvcheck //using for validation
	statusFilter shipment.Status
	skip         int
	limit        int

	guard guard.ConstructorGuard
}

// NewGetShipmentsQuery creates a query for a page of shipments. statusFilter
// may be shipment.Unknown to list every status; limit 0 means the default
// page size.
func NewGetShipmentsQuery(statusFilter shipment.Status, skip, limit int) (GetShipmentsQuery, error) {
	q := GetShipmentsQuery{
		statusFilter: statusFilter,
		guard:        guard.NewConstructorGuard(),
	}

	if skip < 0 {
		return GetShipmentsQuery{}, errs.NewValueIsInvalidErrorWithCause(
			"skip", fmt.Errorf("%d is negative", skip))
	}
	if limit < 0 || limit > maxPageLimit {
		return GetShipmentsQuery{}, errs.NewValueIsOutOfRangeError("limit", limit, 0, maxPageLimit)
	}
	if limit == 0 {
		limit = defaultPageLimit
	}
	if statusFilter != shipment.Unknown {
		if err := statusFilter.Validate(); err != nil {
			return GetShipmentsQuery{}, err
		}
	}

	q.skip = skip
	q.limit = limit
	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetShipmentsQuery) Validate() error {
	return q.guard.Validate(ErrGetShipmentsQueryIsNotConstructed)
}

// StatusFilter returns the requested status, shipment.Unknown for all.
func (q GetShipmentsQuery) StatusFilter() shipment.Status {
	return q.statusFilter
}

// Skip returns the page offset.
func (q GetShipmentsQuery) Skip() int {
	return q.skip
}

// Limit returns the page size.
func (q GetShipmentsQuery) Limit() int {
	return q.limit
}

// ShipmentView is the shipment read model.
type ShipmentView struct {
	ID                  kernel.UUID
	ShipmentNumber      string
	OrderID             kernel.UUID
	DriverID            kernel.UUID
	VehicleID           kernel.UUID
	RouteID             kernel.UUID
	Status              string
	DepartureTime       *time.Time
	ExpectedArrivalTime *time.Time
	ActualArrivalTime   *time.Time
	DistanceTraveledKm  float64
	FuelConsumedLiters  float64
	Cost                float64
}

// GetShipmentsQueryResponse carries one page of shipments together with the
// total number of matching rows.
type GetShipmentsQueryResponse struct {
	Total int64
	Data  []ShipmentView
}
