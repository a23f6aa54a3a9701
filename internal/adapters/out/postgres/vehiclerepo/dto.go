// Package vehiclerepo implements GORM-based persistence for vehicle aggregates.
package vehiclerepo

import (
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/vehicle"

	"github.com/google/uuid"
)

// VehicleDTO represents the database structure for persisting vehicle aggregates.
type VehicleDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	LicensePlate   string    `gorm:"uniqueIndex"`
	VehicleType    string
	Brand          string
	Model          string
	Year           int
	CapacityKg     float64
	CapacityCubicM float64
	MileageKm      int
	IsAvailable    bool `gorm:"index"`
}

// TableName overrides GORM's default naming convention.
func (VehicleDTO) TableName() string {
	return "vehicles"
}

func fromDomain(aggregate *vehicle.Vehicle) VehicleDTO {
	capacity := aggregate.Capacity()

	return VehicleDTO{
		ID:             aggregate.ID().Bytes(),
		LicensePlate:   aggregate.LicensePlate(),
		VehicleType:    aggregate.VehicleType(),
		Brand:          aggregate.Brand(),
		Model:          aggregate.Model(),
		Year:           aggregate.Year(),
		CapacityKg:     capacity.WeightKg,
		CapacityCubicM: capacity.VolumeCubicM,
		MileageKm:      aggregate.MileageKm(),
		IsAvailable:    aggregate.IsAvailable(),
	}
}

func toDomain(dto VehicleDTO) (*vehicle.Vehicle, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return vehicle.RestoreVehicle(
		id,
		dto.LicensePlate,
		dto.VehicleType,
		dto.Brand,
		dto.Model,
		dto.Year,
		vehicle.Capacity{
			WeightKg:     dto.CapacityKg,
			VolumeCubicM: dto.CapacityCubicM,
		},
		dto.MileageKm,
		dto.IsAvailable,
	)
}
