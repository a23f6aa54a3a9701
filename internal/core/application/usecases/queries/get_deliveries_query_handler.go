package queries

import (
	"context"

	"logistics/internal/core/domain/model/delivery"
	"logistics/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetDeliveriesQueryHandler retrieves delivery pages from the database.
type GetDeliveriesQueryHandler struct {
	db *gorm.DB
}

// NewGetDeliveriesQueryHandler creates a handler for delivery list queries.
func NewGetDeliveriesQueryHandler(db *gorm.DB) GetDeliveriesQueryHandler {
	return GetDeliveriesQueryHandler{db: db}
}

// Handle executes the query. The count and the page are read in one
// transaction so the total matches the data.
func (h GetDeliveriesQueryHandler) Handle(
	ctx context.Context,
	query GetDeliveriesQuery,
) (GetDeliveriesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDeliveriesQueryResponse{}, err
	}

	response := GetDeliveriesQueryResponse{Data: make([]DeliveryView, 0, query.Limit())}

	err := h.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		where := ""
		args := []any{}
		if query.StatusFilter() != delivery.Unknown {
			where = "WHERE status = ?"
			args = append(args, int(query.StatusFilter()))
		}

		if err := tx.Raw(
			"SELECT COUNT(*) FROM deliveries "+where, args...,
		).Scan(&response.Total).Error; err != nil {
			return err
		}

		rows, err := tx.Raw(`
			SELECT
				id,
				shipment_id,
				recipient_name,
				recipient_phone,
				recipient_address,
				recipient_city,
				delivery_time,
				signature_required,
				signature_obtained,
				signature_date,
				notes,
				status,
				attempts
			FROM deliveries `+where+`
			ORDER BY id
			OFFSET ? LIMIT ?
		`, append(args, query.Skip(), query.Limit())...).Rows()
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var view DeliveryView
			var id, shipmentID uuid.UUID
			var status int

			err = rows.Scan(
				&id,
				&shipmentID,
				&view.RecipientName,
				&view.RecipientPhone,
				&view.RecipientAddress,
				&view.RecipientCity,
				&view.DeliveryTime,
				&view.SignatureRequired,
				&view.SignatureObtained,
				&view.SignatureDate,
				&view.Notes,
				&status,
				&view.Attempts,
			)
			if err != nil {
				return err
			}

			if view.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
				return err
			}
			if view.ShipmentID, err = kernel.UUIDFromBytes(shipmentID[:]); err != nil {
				return err
			}
			view.Status = delivery.Status(status).String()

			response.Data = append(response.Data, view)
		}

		return rows.Err()
	})
	if err != nil {
		return GetDeliveriesQueryResponse{}, err
	}

	return response, nil
}
