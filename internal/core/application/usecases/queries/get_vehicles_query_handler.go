package queries

import (
	"context"

	"logistics/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetVehiclesQueryHandler retrieves the vehicle fleet from the database.
type GetVehiclesQueryHandler struct {
	db *gorm.DB
}

// NewGetVehiclesQueryHandler creates a handler for vehicle fleet queries.
func NewGetVehiclesQueryHandler(db *gorm.DB) GetVehiclesQueryHandler {
	return GetVehiclesQueryHandler{db: db}
}

// Handle executes the query, sorted by license plate.
func (h GetVehiclesQueryHandler) Handle(
	ctx context.Context,
	query GetVehiclesQuery,
) (GetVehiclesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetVehiclesQueryResponse{}, err
	}

	where := ""
	if query.AvailableOnly() {
		where = "WHERE is_available"
	}

	response := GetVehiclesQueryResponse{Data: make([]VehicleView, 0)}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			license_plate,
			vehicle_type,
			brand,
			model,
			year,
			capacity_kg,
			capacity_cubic_m,
			mileage_km,
			is_available
		FROM vehicles ` + where + `
		ORDER BY license_plate
	`).Rows()
	if err != nil {
		return GetVehiclesQueryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var view VehicleView
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&view.LicensePlate,
			&view.VehicleType,
			&view.Brand,
			&view.Model,
			&view.Year,
			&view.CapacityKg,
			&view.CapacityCubicM,
			&view.MileageKm,
			&view.IsAvailable,
		)
		if err != nil {
			return GetVehiclesQueryResponse{}, err
		}

		if view.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return GetVehiclesQueryResponse{}, err
		}

		response.Data = append(response.Data, view)
	}
	if err = rows.Err(); err != nil {
		return GetVehiclesQueryResponse{}, err
	}

	response.Total = int64(len(response.Data))
	return response, nil
}
