package queries

import (
	"context"
	"time"

	"logistics/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetRoutesQueryHandler retrieves the route catalog from the database.
type GetRoutesQueryHandler struct {
	db *gorm.DB
}

// NewGetRoutesQueryHandler creates a handler for route catalog queries.
func NewGetRoutesQueryHandler(db *gorm.DB) GetRoutesQueryHandler {
	return GetRoutesQueryHandler{db: db}
}

// Handle executes the query, sorted by name.
func (h GetRoutesQueryHandler) Handle(
	ctx context.Context,
	query GetRoutesQuery,
) (GetRoutesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetRoutesQueryResponse{}, err
	}

	where := ""
	if query.ActiveOnly() {
		where = "WHERE is_active"
	}

	response := GetRoutesQueryResponse{Data: make([]RouteView, 0)}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			start_location,
			end_location,
			distance_km,
			estimated_duration,
			is_active
		FROM routes ` + where + `
		ORDER BY name
	`).Rows()
	if err != nil {
		return GetRoutesQueryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var view RouteView
		var id uuid.UUID
		var estimated int64

		err = rows.Scan(
			&id,
			&view.Name,
			&view.StartLocation,
			&view.EndLocation,
			&view.DistanceKm,
			&estimated,
			&view.IsActive,
		)
		if err != nil {
			return GetRoutesQueryResponse{}, err
		}

		if view.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return GetRoutesQueryResponse{}, err
		}
		view.EstimatedDuration = time.Duration(estimated)

		response.Data = append(response.Data, view)
	}
	if err = rows.Err(); err != nil {
		return GetRoutesQueryResponse{}, err
	}

	response.Total = int64(len(response.Data))
	return response, nil
}
