// Package routerepo implements GORM-based persistence for route aggregates.
package routerepo

import (
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/route"

	"github.com/google/uuid"
)

// RouteDTO represents the database structure for persisting route aggregates.
// EstimatedDuration is stored as nanoseconds in a bigint column.
type RouteDTO struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name              string    `gorm:"uniqueIndex"`
	StartLocation     string
	EndLocation       string
	DistanceKm        float64
	EstimatedDuration time.Duration
	IsActive          bool
}

// TableName overrides GORM's default naming convention.
func (RouteDTO) TableName() string {
	return "routes"
}

func fromDomain(aggregate *route.Route) RouteDTO {
	return RouteDTO{
		ID:                aggregate.ID().Bytes(),
		Name:              aggregate.Name(),
		StartLocation:     aggregate.StartLocation(),
		EndLocation:       aggregate.EndLocation(),
		DistanceKm:        aggregate.DistanceKm(),
		EstimatedDuration: aggregate.EstimatedDuration(),
		IsActive:          aggregate.IsActive(),
	}
}

func toDomain(dto RouteDTO) (*route.Route, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return route.RestoreRoute(
		id,
		dto.Name,
		dto.StartLocation,
		dto.EndLocation,
		dto.DistanceKm,
		dto.EstimatedDuration,
		dto.IsActive,
	)
}
