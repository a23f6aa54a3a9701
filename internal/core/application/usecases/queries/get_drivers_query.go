package queries

import (
	"errors"
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/guard"
)

var ErrGetDriversQueryIsNotConstructed = errors.New(
	"GetDriversQuery must be created via NewGetDriversQuery constructor",
)

// GetDriversQuery retrieves drivers, optionally only the ones free for a
// new claim.
type GetDriversQuery struct {
	availableOnly bool

	guard guard.ConstructorGuard
}

// NewGetDriversQuery creates a query for the driver roster.
func NewGetDriversQuery(availableOnly bool) GetDriversQuery {
	return GetDriversQuery{
		availableOnly: availableOnly,
		guard:         guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q GetDriversQuery) Validate() error {
	return q.guard.Validate(ErrGetDriversQueryIsNotConstructed)
}

// AvailableOnly reports whether claimed drivers are filtered out.
func (q GetDriversQuery) AvailableOnly() bool {
	return q.availableOnly
}

// DriverView is the driver read model.
type DriverView struct {
	ID              kernel.UUID
	EmployeeID      kernel.UUID
	LicenseNumber   string
	LicenseExpiry   time.Time
	ExperienceYears int
	Rating          float64
	IsAvailable     bool
}

// GetDriversQueryResponse carries the driver roster with its row count.
type GetDriversQueryResponse struct {
	Total int64
	Data  []DriverView
}
