// Package deliveryrepo implements GORM-based persistence for delivery aggregates.
package deliveryrepo

import (
	"time"

	"logistics/internal/core/domain/model/delivery"
	"logistics/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DeliveryDTO represents the database structure for persisting delivery
// aggregates. A shipment has at most one delivery row across all attempts.
type DeliveryDTO struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	ShipmentID        uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	RecipientName     string
	RecipientPhone    string
	RecipientAddress  string
	RecipientCity     string
	DeliveryTime      *time.Time
	SignatureRequired bool
	SignatureObtained bool
	SignatureDate     *time.Time
	Notes             string
	Status            int `gorm:"index"`
	Attempts          int
}

// TableName overrides GORM's default naming convention.
func (DeliveryDTO) TableName() string {
	return "deliveries"
}

func fromDomain(aggregate *delivery.Delivery) DeliveryDTO {
	recipient := aggregate.Recipient()

	return DeliveryDTO{
		ID:                aggregate.ID().Bytes(),
		ShipmentID:        aggregate.ShipmentID().Bytes(),
		RecipientName:     recipient.Name,
		RecipientPhone:    recipient.Phone,
		RecipientAddress:  recipient.Address,
		RecipientCity:     recipient.City,
		DeliveryTime:      aggregate.DeliveryTime(),
		SignatureRequired: aggregate.SignatureRequired(),
		SignatureObtained: aggregate.SignatureObtained(),
		SignatureDate:     aggregate.SignatureDate(),
		Notes:             aggregate.Notes(),
		Status:            int(aggregate.Status()),
		Attempts:          aggregate.Attempts(),
	}
}

func toDomain(dto DeliveryDTO) (*delivery.Delivery, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	shipmentID, err := kernel.UUIDFromBytes(dto.ShipmentID[:])
	if err != nil {
		return nil, err
	}

	return delivery.RestoreDelivery(
		id,
		shipmentID,
		delivery.Recipient{
			Name:    dto.RecipientName,
			Phone:   dto.RecipientPhone,
			Address: dto.RecipientAddress,
			City:    dto.RecipientCity,
		},
		dto.SignatureRequired,
		dto.SignatureObtained,
		dto.SignatureDate,
		dto.DeliveryTime,
		dto.Notes,
		delivery.Status(dto.Status),
		dto.Attempts,
	)
}
