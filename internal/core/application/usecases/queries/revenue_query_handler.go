package queries

import (
	"context"
	"database/sql"

	"logistics/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// RevenueQueryHandler computes the revenue summary.
type RevenueQueryHandler struct {
	db *gorm.DB
}

// NewRevenueQueryHandler creates a handler for revenue queries.
func NewRevenueQueryHandler(db *gorm.DB) RevenueQueryHandler {
	return RevenueQueryHandler{db: db}
}

// Handle executes the aggregation inside a repeatable read transaction so
// the total, count and average come from the same snapshot.
func (h RevenueQueryHandler) Handle(
	ctx context.Context,
	query RevenueQuery,
) (RevenueQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return RevenueQueryResponse{}, err
	}

	var response RevenueQueryResponse

	err := h.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		stmt := "SELECT COALESCE(SUM(cost), 0) FROM orders"
		args := make([]interface{}, 0, 1)
		if query.StatusFilter() != order.Unknown {
			stmt += " WHERE status = ?"
			args = append(args, int(query.StatusFilter()))
		}

		if err := tx.Raw(stmt, args...).Row().Scan(&response.TotalRevenue); err != nil {
			return err
		}

		return tx.Raw(`
			SELECT
				COUNT(*),
				COALESCE(AVG(cost), 0)
			FROM shipments
		`).Row().Scan(
			&response.TotalShipments,
			&response.AverageShipmentCost,
		)
	}, &sql.TxOptions{Isolation: sql.LevelRepeatableRead})
	if err != nil {
		return RevenueQueryResponse{}, err
	}

	return response, nil
}
