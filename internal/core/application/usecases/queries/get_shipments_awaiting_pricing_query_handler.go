package queries

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/shipment"
	"fulfillment/internal/core/domain/model/warehouse"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GetShipmentsAwaitingPricingQueryHandler struct {
	db *gorm.DB
}

func NewGetShipmentsAwaitingPricingQueryHandler(db *gorm.DB) GetShipmentsAwaitingPricingQueryHandler {
	return GetShipmentsAwaitingPricingQueryHandler{db: db}
}

// Handle returns shipment ids, oldest first.
func (h GetShipmentsAwaitingPricingQueryHandler) Handle(
	ctx context.Context,
	query GetShipmentsAwaitingPricingQuery,
) ([]kernel.UUID, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT s.id
		FROM shipments s
		WHERE s.status = ?
			AND s.choice = ?
			AND s.price_eur IS NULL
			AND NOT EXISTS (
				SELECT 1
				FROM shipment_items si
				JOIN warehouse_orders o ON o.id = si.warehouse_order_id
				WHERE si.shipment_id = s.id AND o.status <> ?
			)
		ORDER BY s.created_at, s.id
		LIMIT ?
	`, int(shipment.Pending), int(shipment.NoChoice), int(warehouse.ReadyToShip), query.limit).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := make([]kernel.UUID, 0)
	for rows.Next() {
		var raw uuid.UUID
		if err = rows.Scan(&raw); err != nil {
			return nil, err
		}

		id, idErr := kernel.UUIDFromBytes(raw[:])
		if idErr != nil {
			return nil, idErr
		}
		ids = append(ids, id)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return ids, nil
}
