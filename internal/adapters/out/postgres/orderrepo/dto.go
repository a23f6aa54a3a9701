// Package orderrepo implements GORM-based persistence for order aggregates,
// mapping between the domain model and its relational representation.
package orderrepo

import (
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Statuses and priorities are stored as their integer codes.
type OrderDTO struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderNumber       string    `gorm:"uniqueIndex"`
	CustomerID        uuid.UUID `gorm:"type:uuid;index"`
	WarehouseID       uuid.UUID `gorm:"type:uuid"`
	OrderDate         time.Time
	DeliveryDate      time.Time
	Description       string
	TotalWeightKg     float64
	TotalVolumeCubicM float64
	Notes             string
	Cost              float64
	Priority          int
	Status            int `gorm:"index"`
}

// TableName overrides GORM's default naming convention.
func (OrderDTO) TableName() string {
	return "orders"
}

func fromDomain(aggregate *order.Order) OrderDTO {
	details := aggregate.Details()

	return OrderDTO{
		ID:                aggregate.ID().Bytes(),
		OrderNumber:       aggregate.OrderNumber(),
		CustomerID:        aggregate.CustomerID().Bytes(),
		WarehouseID:       aggregate.WarehouseID().Bytes(),
		OrderDate:         aggregate.OrderDate(),
		DeliveryDate:      aggregate.DeliveryDate(),
		Description:       details.Description,
		TotalWeightKg:     details.TotalWeightKg,
		TotalVolumeCubicM: details.TotalVolumeCubicM,
		Notes:             details.Notes,
		Cost:              aggregate.Cost(),
		Priority:          int(aggregate.Priority()),
		Status:            int(aggregate.Status()),
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	warehouseID, err := kernel.UUIDFromBytes(dto.WarehouseID[:])
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		dto.OrderNumber,
		customerID,
		warehouseID,
		dto.OrderDate,
		dto.DeliveryDate,
		dto.Cost,
		order.Priority(dto.Priority),
		order.Details{
			Description:       dto.Description,
			TotalWeightKg:     dto.TotalWeightKg,
			TotalVolumeCubicM: dto.TotalVolumeCubicM,
			Notes:             dto.Notes,
		},
		order.Status(dto.Status),
	)
}
