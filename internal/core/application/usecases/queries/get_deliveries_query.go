package queries

import (
	"errors"
	"fmt"
	"time"

	"logistics/internal/core/domain/model/delivery"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

var ErrGetDeliveriesQueryIsNotConstructed = errors.New(
	"GetDeliveriesQuery must be created via NewGetDeliveriesQuery constructor",
)

// GetDeliveriesQuery retrieves a page of delivery records, optionally
// narrowed to a single status.
type GetDeliveriesQuery struct { //nolint:recvcheck //using for validation
	statusFilter delivery.Status
	skip         int
	limit        int

	guard guard.ConstructorGuard
}

// NewGetDeliveriesQuery creates a query for a page of deliveries.
// statusFilter may be delivery.Unknown to list every status; limit 0 means
// the default page size.
func NewGetDeliveriesQuery(statusFilter delivery.Status, skip, limit int) (GetDeliveriesQuery, error) {
	q := GetDeliveriesQuery{
		statusFilter: statusFilter,
		guard:        guard.NewConstructorGuard(),
	}

	if skip < 0 {
		return GetDeliveriesQuery{}, errs.NewValueIsInvalidErrorWithCause(
			"skip", fmt.Errorf("%d is negative", skip))
	}
	if limit < 0 || limit > maxPageLimit {
		return GetDeliveriesQuery{}, errs.NewValueIsOutOfRangeError("limit", limit, 0, maxPageLimit)
	}
	if limit == 0 {
		limit = defaultPageLimit
	}
	if statusFilter != delivery.Unknown {
		if err := statusFilter.Validate(); err != nil {
			return GetDeliveriesQuery{}, err
		}
	}

	q.skip = skip
	q.limit = limit
	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDeliveriesQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveriesQueryIsNotConstructed)
}

// StatusFilter returns the requested status, delivery.Unknown for all.
func (q GetDeliveriesQuery) StatusFilter() delivery.Status {
	return q.statusFilter
}

// Skip returns the page offset.
func (q GetDeliveriesQuery) Skip() int {
	return q.skip
}

// Limit returns the page size.
func (q GetDeliveriesQuery) Limit() int {
	return q.limit
}

// DeliveryView is the delivery read model.
type DeliveryView struct {
	ID                kernel.UUID
	ShipmentID        kernel.UUID
	RecipientName     string
	RecipientPhone    string
	RecipientAddress  string
	RecipientCity     string
	DeliveryTime      *time.Time
	SignatureRequired bool
	SignatureObtained bool
	SignatureDate     *time.Time
	Notes             string
	Status            string
	Attempts          int
}

// GetDeliveriesQueryResponse carries one page of deliveries together with
// the total number of matching rows.
type GetDeliveriesQueryResponse struct {
	Total int64
	Data  []DeliveryView
}
