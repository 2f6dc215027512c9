package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/shipment"
)

// ShipmentRepository persists shipments and their member links. A warehouse
// order is linked to at most one active shipment; Add fails with a validation
// error when a member is already taken.
type ShipmentRepository interface {
	Add(ctx context.Context, aggregate *shipment.Shipment) error
	Update(ctx context.Context, aggregate *shipment.Shipment) error
	Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error)

	// GetForUpdate loads the shipment and locks its row until the transaction
	// ends, serialising concurrent consolidations and client choices.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error)

	// FindActiveByWarehouseOrder returns the active shipment owning the order.
	FindActiveByWarehouseOrder(ctx context.Context, orderID kernel.UUID) (*shipment.Shipment, error)
}
