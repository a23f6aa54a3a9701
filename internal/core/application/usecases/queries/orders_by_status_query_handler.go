package queries

import (
	"context"
	"database/sql"

	"logistics/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// OrdersByStatusQueryHandler computes the order count per status.
type OrdersByStatusQueryHandler struct {
	db *gorm.DB
}

// NewOrdersByStatusQueryHandler creates a handler for the status breakdown.
func NewOrdersByStatusQueryHandler(db *gorm.DB) OrdersByStatusQueryHandler {
	return OrdersByStatusQueryHandler{db: db}
}

// Handle executes the aggregation inside a repeatable read transaction so
// the breakdown reflects a single moment even while orders transition
// concurrently.
func (h OrdersByStatusQueryHandler) Handle(
	ctx context.Context,
	query OrdersByStatusQuery,
) (OrdersByStatusQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return OrdersByStatusQueryResponse{}, err
	}

	counts := make(map[string]int64)
	for _, status := range []order.Status{
		order.Pending, order.Processing, order.Shipped, order.Delivered, order.Cancelled,
	} {
		counts[status.String()] = 0
	}

	err := h.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		rows, err := tx.Raw(`
			SELECT status, COUNT(*)
			FROM orders
			GROUP BY status
		`).Rows()
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var status int
			var count int64
			if err = rows.Scan(&status, &count); err != nil {
				return err
			}
			counts[order.Status(status).String()] = count
		}

		return rows.Err()
	}, &sql.TxOptions{Isolation: sql.LevelRepeatableRead})
	if err != nil {
		return OrdersByStatusQueryResponse{}, err
	}

	return OrdersByStatusQueryResponse{Counts: counts}, nil
}
