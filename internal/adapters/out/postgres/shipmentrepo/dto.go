// Package shipmentrepo implements GORM-based persistence for shipment
// aggregates, the claim-holding center of the lifecycle.
package shipmentrepo

import (
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"

	"github.com/google/uuid"
)

// ShipmentDTO represents the database structure for persisting shipment
// aggregates. Arrival timestamps stay NULL until the lifecycle reaches them.
type ShipmentDTO struct {
	ID                  uuid.UUID `gorm:"type:uuid;primaryKey"`
	ShipmentNumber      string    `gorm:"uniqueIndex"`
	OrderID             uuid.UUID `gorm:"type:uuid;index"`
	DriverID            uuid.UUID `gorm:"type:uuid;index"`
	VehicleID           uuid.UUID `gorm:"type:uuid;index"`
	RouteID             uuid.UUID `gorm:"type:uuid"`
	Status              int       `gorm:"index"`
	DepartureTime       *time.Time
	ExpectedArrivalTime *time.Time
	ActualArrivalTime   *time.Time
	DistanceTraveledKm  float64
	FuelConsumedLiters  float64
	Cost                float64
	ResourcesReleased   bool
}

// TableName overrides GORM's default naming convention.
func (ShipmentDTO) TableName() string {
	return "shipments"
}

func fromDomain(aggregate *shipment.Shipment) ShipmentDTO {
	return ShipmentDTO{
		ID:                  aggregate.ID().Bytes(),
		ShipmentNumber:      aggregate.ShipmentNumber(),
		OrderID:             aggregate.OrderID().Bytes(),
		DriverID:            aggregate.DriverID().Bytes(),
		VehicleID:           aggregate.VehicleID().Bytes(),
		RouteID:             aggregate.RouteID().Bytes(),
		Status:              int(aggregate.Status()),
		DepartureTime:       aggregate.DepartureTime(),
		ExpectedArrivalTime: aggregate.ExpectedArrivalTime(),
		ActualArrivalTime:   aggregate.ActualArrivalTime(),
		DistanceTraveledKm:  aggregate.DistanceTraveledKm(),
		FuelConsumedLiters:  aggregate.FuelConsumedLiters(),
		Cost:                aggregate.Cost(),
		ResourcesReleased:   aggregate.ResourcesReleased(),
	}
}

func toDomain(dto ShipmentDTO) (*shipment.Shipment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	driverID, err := kernel.UUIDFromBytes(dto.DriverID[:])
	if err != nil {
		return nil, err
	}

	vehicleID, err := kernel.UUIDFromBytes(dto.VehicleID[:])
	if err != nil {
		return nil, err
	}

	routeID, err := kernel.UUIDFromBytes(dto.RouteID[:])
	if err != nil {
		return nil, err
	}

	return shipment.RestoreShipment(
		id,
		dto.ShipmentNumber,
		orderID,
		driverID,
		vehicleID,
		routeID,
		dto.Cost,
		shipment.Status(dto.Status),
		dto.DepartureTime,
		dto.ExpectedArrivalTime,
		dto.ActualArrivalTime,
		dto.DistanceTraveledKm,
		dto.FuelConsumedLiters,
		dto.ResourcesReleased,
	)
}
