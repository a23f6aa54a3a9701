package queries

import (
	"errors"

	"logistics/internal/core/domain/model/order"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrRevenueQueryIsNotConstructed = errors.New(
	"RevenueQuery must be created via NewRevenueQuery constructor",
)

// RevenueQuery retrieves the revenue summary. Revenue is the sum of order
// costs, optionally narrowed to a single order status; the shipment count
// and average cover every shipment.
type RevenueQuery struct {
	statusFilter order.Status

	guard guard.ConstructorGuard
}

// NewRevenueQuery creates a query for revenue totals. statusFilter may be
// order.Unknown to sum over every order.
func NewRevenueQuery(statusFilter order.Status) (RevenueQuery, error) {
	if statusFilter != order.Unknown {
		if err := statusFilter.Validate(); err != nil {
			return RevenueQuery{}, errs.NewValueIsInvalidErrorWithCause("statusFilter", err)
		}
	}

	return RevenueQuery{
		statusFilter: statusFilter,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q RevenueQuery) Validate() error {
	return q.guard.Validate(ErrRevenueQueryIsNotConstructed)
}

// StatusFilter returns the requested order status, order.Unknown for all.
func (q RevenueQuery) StatusFilter() order.Status {
	return q.statusFilter
}

// RevenueQueryResponse summarizes revenue. AverageShipmentCost is zero when
// there are no shipments.
type RevenueQueryResponse struct {
	TotalRevenue        float64
	TotalShipments      int64
	AverageShipmentCost float64
}
