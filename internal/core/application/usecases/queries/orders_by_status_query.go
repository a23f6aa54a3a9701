package queries

import (
	"errors"

	"logistics/internal/pkg/guard"
)

var ErrOrdersByStatusQueryIsNotConstructed = errors.New(
	"OrdersByStatusQuery must be created via NewOrdersByStatusQuery constructor",
)

// OrdersByStatusQuery retrieves the order count per lifecycle status.
type OrdersByStatusQuery struct {
	guard guard.ConstructorGuard
}

// NewOrdersByStatusQuery creates a query for the status breakdown.
func NewOrdersByStatusQuery() OrdersByStatusQuery {
	return OrdersByStatusQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q OrdersByStatusQuery) Validate() error {
	return q.guard.Validate(ErrOrdersByStatusQueryIsNotConstructed)
}

// OrdersByStatusQueryResponse maps each status name to its order count.
// Statuses with no orders appear with a zero count.
type OrdersByStatusQueryResponse struct {
	Counts map[string]int64
}
