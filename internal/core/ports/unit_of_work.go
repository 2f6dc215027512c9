package ports

import (
	"context"
)

// UnitOfWorkFactory creates a fresh UnitOfWork per command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is a transaction boundary. Repositories obtained after Begin run
// inside the transaction.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error

	DeliveryRepository() DeliveryRepository
	WarehouseOrderRepository() WarehouseOrderRepository
	ShipmentRepository() ShipmentRepository
	PricingRuleRepository() PricingRuleRepository
	InvoiceRepository() InvoiceRepository
	SubscriptionRepository() SubscriptionRepository
	ClientRepository() ClientRepository
}
