package queries

import (
	"context"

	"logistics/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetDriversQueryHandler retrieves the driver roster from the database.
type GetDriversQueryHandler struct {
	db *gorm.DB
}

// NewGetDriversQueryHandler creates a handler for driver roster queries.
func NewGetDriversQueryHandler(db *gorm.DB) GetDriversQueryHandler {
	return GetDriversQueryHandler{db: db}
}

// Handle executes the query, sorted by license number.
func (h GetDriversQueryHandler) Handle(
	ctx context.Context,
	query GetDriversQuery,
) (GetDriversQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDriversQueryResponse{}, err
	}

	where := ""
	if query.AvailableOnly() {
		where = "WHERE is_available"
	}

	response := GetDriversQueryResponse{Data: make([]DriverView, 0)}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			employee_id,
			license_number,
			license_expiry,
			experience_years,
			rating,
			is_available
		FROM drivers ` + where + `
		ORDER BY license_number
	`).Rows()
	if err != nil {
		return GetDriversQueryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var view DriverView
		var id, employeeID uuid.UUID

		err = rows.Scan(
			&id,
			&employeeID,
			&view.LicenseNumber,
			&view.LicenseExpiry,
			&view.ExperienceYears,
			&view.Rating,
			&view.IsAvailable,
		)
		if err != nil {
			return GetDriversQueryResponse{}, err
		}

		if view.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return GetDriversQueryResponse{}, err
		}
		if view.EmployeeID, err = kernel.UUIDFromBytes(employeeID[:]); err != nil {
			return GetDriversQueryResponse{}, err
		}

		response.Data = append(response.Data, view)
	}
	if err = rows.Err(); err != nil {
		return GetDriversQueryResponse{}, err
	}

	response.Total = int64(len(response.Data))
	return response, nil
}
