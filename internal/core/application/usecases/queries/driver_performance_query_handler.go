package queries

import (
	"context"
	"database/sql"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DriverPerformanceQueryHandler computes per-driver shipment statistics.
type DriverPerformanceQueryHandler struct {
	db *gorm.DB
}

// NewDriverPerformanceQueryHandler creates a handler for driver statistics.
func NewDriverPerformanceQueryHandler(db *gorm.DB) DriverPerformanceQueryHandler {
	return DriverPerformanceQueryHandler{db: db}
}

// Handle executes the aggregation inside a repeatable read transaction so
// every driver's numbers come from the same snapshot.
func (h DriverPerformanceQueryHandler) Handle(
	ctx context.Context,
	query DriverPerformanceQuery,
) (DriverPerformanceQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return DriverPerformanceQueryResponse{}, err
	}

	response := DriverPerformanceQueryResponse{Data: make([]DriverPerformanceView, 0)}

	err := h.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		rows, err := tx.Raw(`
			SELECT
				d.id,
				d.license_number,
				d.rating,
				COUNT(s.id),
				COUNT(s.id) FILTER (WHERE s.status = ?),
				COALESCE(SUM(s.distance_traveled_km), 0)
			FROM drivers d
			LEFT JOIN shipments s ON s.driver_id = d.id
			GROUP BY d.id, d.license_number, d.rating
			ORDER BY d.license_number
		`, int(shipment.Delivered)).Rows()
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var view DriverPerformanceView
			var id uuid.UUID

			err = rows.Scan(
				&id,
				&view.LicenseNumber,
				&view.Rating,
				&view.TotalShipments,
				&view.DeliveredShipments,
				&view.TotalDistanceKm,
			)
			if err != nil {
				return err
			}

			if view.DriverID, err = kernel.UUIDFromBytes(id[:]); err != nil {
				return err
			}

			response.Data = append(response.Data, view)
		}

		return rows.Err()
	}, &sql.TxOptions{Isolation: sql.LevelRepeatableRead})
	if err != nil {
		return DriverPerformanceQueryResponse{}, err
	}

	return response, nil
}
