// Package driverrepo implements GORM-based persistence for driver aggregates.
package driverrepo

import (
	"time"

	"logistics/internal/core/domain/model/driver"
	"logistics/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DriverDTO represents the database structure for persisting driver aggregates.
type DriverDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeID      uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	LicenseNumber   string    `gorm:"uniqueIndex"`
	LicenseExpiry   time.Time
	ExperienceYears int
	Rating          float64
	IsAvailable     bool `gorm:"index"`
}

// TableName overrides GORM's default naming convention.
func (DriverDTO) TableName() string {
	return "drivers"
}

func fromDomain(aggregate *driver.Driver) DriverDTO {
	return DriverDTO{
		ID:              aggregate.ID().Bytes(),
		EmployeeID:      aggregate.EmployeeID().Bytes(),
		LicenseNumber:   aggregate.LicenseNumber(),
		LicenseExpiry:   aggregate.LicenseExpiry(),
		ExperienceYears: aggregate.ExperienceYears(),
		Rating:          aggregate.Rating(),
		IsAvailable:     aggregate.IsAvailable(),
	}
}

func toDomain(dto DriverDTO) (*driver.Driver, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	employeeID, err := kernel.UUIDFromBytes(dto.EmployeeID[:])
	if err != nil {
		return nil, err
	}

	return driver.RestoreDriver(
		id,
		employeeID,
		dto.LicenseNumber,
		dto.LicenseExpiry,
		dto.ExperienceYears,
		dto.Rating,
		dto.IsAvailable,
	)
}
