package queries

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetShipmentsQueryHandler retrieves shipment pages from the database.
type GetShipmentsQueryHandler struct {
	db *gorm.DB
}

// NewGetShipmentsQueryHandler creates a handler for shipment list queries.
func NewGetShipmentsQueryHandler(db *gorm.DB) GetShipmentsQueryHandler {
	return GetShipmentsQueryHandler{db: db}
}

// Handle executes the query. The count and the page are read in one
// transaction so the total matches the data.
func (h GetShipmentsQueryHandler) Handle(
	ctx context.Context,
	query GetShipmentsQuery,
) (GetShipmentsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetShipmentsQueryResponse{}, err
	}

	response := GetShipmentsQueryResponse{Data: make([]ShipmentView, 0, query.Limit())}

	err := h.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		where := ""
		args := []any{}
		if query.StatusFilter() != shipment.Unknown {
			where = "WHERE status = ?"
			args = append(args, int(query.StatusFilter()))
		}

		if err := tx.Raw(
			"SELECT COUNT(*) FROM shipments "+where, args...,
		).Scan(&response.Total).Error; err != nil {
			return err
		}

		rows, err := tx.Raw(`
			SELECT
				id,
				shipment_number,
				order_id,
				driver_id,
				vehicle_id,
				route_id,
				status,
				departure_time,
				expected_arrival_time,
				actual_arrival_time,
				distance_traveled_km,
				fuel_consumed_liters,
				cost
			FROM shipments `+where+`
			ORDER BY shipment_number, id
			OFFSET ? LIMIT ?
		`, append(args, query.Skip(), query.Limit())...).Rows()
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var view ShipmentView
			var id, orderID, driverID, vehicleID, routeID uuid.UUID
			var status int

			err = rows.Scan(
				&id,
				&view.ShipmentNumber,
				&orderID,
				&driverID,
				&vehicleID,
				&routeID,
				&status,
				&view.DepartureTime,
				&view.ExpectedArrivalTime,
				&view.ActualArrivalTime,
				&view.DistanceTraveledKm,
				&view.FuelConsumedLiters,
				&view.Cost,
			)
			if err != nil {
				return err
			}

			if view.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
				return err
			}
			if view.OrderID, err = kernel.UUIDFromBytes(orderID[:]); err != nil {
				return err
			}
			if view.DriverID, err = kernel.UUIDFromBytes(driverID[:]); err != nil {
				return err
			}
			if view.VehicleID, err = kernel.UUIDFromBytes(vehicleID[:]); err != nil {
				return err
			}
			if view.RouteID, err = kernel.UUIDFromBytes(routeID[:]); err != nil {
				return err
			}
			view.Status = shipment.Status(status).String()

			response.Data = append(response.Data, view)
		}

		return rows.Err()
	})
	if err != nil {
		return GetShipmentsQueryResponse{}, err
	}

	return response, nil
}
