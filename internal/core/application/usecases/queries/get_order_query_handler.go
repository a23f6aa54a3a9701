package queries

import (
	"context"
	"database/sql"
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderQueryHandler retrieves a single order read model.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single order queries.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query. A missing order fails with an
// errs.ObjectNotFoundError.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderView, error) {
	if err := query.Validate(); err != nil {
		return OrderView{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
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
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Row()

	var view OrderView
	var id, customerID, warehouseID uuid.UUID
	var priority, status int

	err := row.Scan(
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
	if errors.Is(err, sql.ErrNoRows) {
		return OrderView{}, errs.NewObjectNotFoundError("orderId", query.OrderID())
	}
	if err != nil {
		return OrderView{}, err
	}

	if view.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return OrderView{}, err
	}
	if view.CustomerID, err = kernel.UUIDFromBytes(customerID[:]); err != nil {
		return OrderView{}, err
	}
	if view.WarehouseID, err = kernel.UUIDFromBytes(warehouseID[:]); err != nil {
		return OrderView{}, err
	}
	view.Priority = order.Priority(priority).String()
	view.Status = order.Status(status).String()

	return view, nil
}
