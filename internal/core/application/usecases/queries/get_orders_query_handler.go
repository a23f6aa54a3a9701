package queries

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrdersQueryHandler retrieves order pages from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersQueryHandler creates a handler for order list queries.
func NewGetOrdersQueryHandler(db *gorm.DB) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db}
}

// Handle executes the query. The count and the page are read in one
// transaction so the total matches the data.
func (h GetOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersQuery,
) (GetOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrdersQueryResponse{}, err
	}

	response := GetOrdersQueryResponse{Data: make([]OrderView, 0, query.Limit())}

	err := h.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		where := ""
		args := []any{}
		if query.StatusFilter() != order.Unknown {
			where = "WHERE status = ?"
			args = append(args, int(query.StatusFilter()))
		}

		if err := tx.Raw(
			"SELECT COUNT(*) FROM orders "+where, args...,
		).Scan(&response.Total).Error; err != nil {
			return err
		}

		rows, err := tx.Raw(`
			SELECT
				id,
				order_number,
				customer_id,
				warehouse_id,
				order_date,
				delivery_date,
				description,
				total_weight_kg,
				total_volume_cubic_m,
				notes,
				cost,
				priority,
				status
			FROM orders `+where+`
			ORDER BY order_date DESC, id
			OFFSET ? LIMIT ?
		`, append(args, query.Skip(), query.Limit())...).Rows()
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var view OrderView
			var id, customerID, warehouseID uuid.UUID
			var priority, status int

			err = rows.Scan(
				&id,
				&view.OrderNumber,
				&customerID,
				&warehouseID,
				&view.OrderDate,
				&view.DeliveryDate,
				&view.Description,
				&view.TotalWeightKg,
				&view.TotalVolumeCubicM,
				&view.Notes,
				&view.Cost,
				&priority,
				&status,
			)
			if err != nil {
				return err
			}

			if view.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
				return err
			}
			if view.CustomerID, err = kernel.UUIDFromBytes(customerID[:]); err != nil {
				return err
			}
			if view.WarehouseID, err = kernel.UUIDFromBytes(warehouseID[:]); err != nil {
				return err
			}
			view.Priority = order.Priority(priority).String()
			view.Status = order.Status(status).String()

			response.Data = append(response.Data, view)
		}

		return rows.Err()
	})
	if err != nil {
		return GetOrdersQueryResponse{}, err
	}

	return response, nil
}
