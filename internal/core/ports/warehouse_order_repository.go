package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/warehouse"
)

// WarehouseOrderRepository persists warehouse orders together with their
// package ledger. Update replaces the ledger as a whole.
type WarehouseOrderRepository interface {
	Add(ctx context.Context, aggregate *warehouse.Order) error
	Update(ctx context.Context, aggregate *warehouse.Order) error
	Get(ctx context.Context, id kernel.UUID) (*warehouse.Order, error)

	// GetForUpdate loads the order and locks its row until the transaction ends.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*warehouse.Order, error)

	// GetMany loads all ids or fails with a not-found error naming the first
	// missing one.
	GetMany(ctx context.Context, ids []kernel.UUID) ([]*warehouse.Order, error)

	// ListOccupyingByClient returns the client's orders that still take up
	// warehouse space, i.e. everything not released yet.
	ListOccupyingByClient(ctx context.Context, clientID kernel.UUID) ([]*warehouse.Order, error)
}
