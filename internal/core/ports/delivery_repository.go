package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/delivery"
	"fulfillment/internal/core/domain/model/kernel"
)

// DeliveryRepository persists expected deliveries.
type DeliveryRepository interface {
	Add(ctx context.Context, aggregate *delivery.Delivery) error
	Update(ctx context.Context, aggregate *delivery.Delivery) error
	Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error)

	// GetForUpdate loads the delivery and locks its row until the transaction
	// ends, so concurrent receipts of one delivery run one after the other.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error)

	// NextDeliveryNumber draws the next receipt number. Numbers are unique and
	// increasing; a rolled back receipt may leave a gap.
	NextDeliveryNumber(ctx context.Context) (int64, error)
}
