// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases; list queries
// carry the total row count next to the requested page.
package queries

import (
	"errors"
	"fmt"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

const (
	defaultPageLimit = 100
	maxPageLimit     = 1000
)

var ErrGetOrdersQueryIsNotConstructed = errors.New(
	"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
)

// GetOrdersQuery retrieves a page of orders, optionally narrowed to a single
// status.
type GetOrdersQuery struct { //nolint:recvcheck //using for validation
	statusFilter order.Status
	skip         int
	limit        int

	guard guard.ConstructorGuard
}

// NewGetOrdersQuery creates a query for a page of orders. statusFilter may
// be order.Unknown to list every status; limit 0 means the default page
// size.
func NewGetOrdersQuery(statusFilter order.Status, skip, limit int) (GetOrdersQuery, error) {
	q := GetOrdersQuery{
		statusFilter: statusFilter,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		q.setPage(skip, limit),
		q.checkStatusFilter(statusFilter),
	); err != nil {
		return GetOrdersQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// StatusFilter returns the requested status, order.Unknown for all.
func (q GetOrdersQuery) StatusFilter() order.Status {
	return q.statusFilter
}

// Skip returns the page offset.
func (q GetOrdersQuery) Skip() int {
	return q.skip
}

// Limit returns the page size.
func (q GetOrdersQuery) Limit() int {
	return q.limit
}

func (q *GetOrdersQuery) setPage(skip, limit int) error {
	if skip < 0 {
		return errs.NewValueIsInvalidErrorWithCause("skip", fmt.Errorf("%d is negative", skip))
	}
	if limit < 0 || limit > maxPageLimit {
		return errs.NewValueIsOutOfRangeError("limit", limit, 0, maxPageLimit)
	}
	if limit == 0 {
		limit = defaultPageLimit
	}

	q.skip = skip
	q.limit = limit
	return nil
}

func (q *GetOrdersQuery) checkStatusFilter(statusFilter order.Status) error {
	if statusFilter == order.Unknown {
		return nil
	}
	return statusFilter.Validate()
}

// OrderView is the order read model.
type OrderView struct {
	ID                kernel.UUID
	OrderNumber       string
	CustomerID        kernel.UUID
	WarehouseID       kernel.UUID
	OrderDate         time.Time
	DeliveryDate      time.Time
	Description       string
	TotalWeightKg     float64
	TotalVolumeCubicM float64
	Notes             string
	Cost              float64
	Priority          string
	Status            string
}

// GetOrdersQueryResponse carries one page of orders together with the total
// number of matching rows.
type GetOrdersQueryResponse struct {
	Total int64
	Data  []OrderView
}
