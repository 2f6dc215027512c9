// Package commands holds the write side of the fulfillment engine. Every
// command is a guarded value object; its handler validates it, runs one unit
// of work and dispatches best-effort side effects after the commit.
package commands

import (
	"context"

	"fulfillment/internal/core/ports"
)

// Each handler depends on the narrowest unit of work that covers the
// repositories it touches.
type (
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	DeliveryRepoFactory interface {
		DeliveryRepository() ports.DeliveryRepository
	}

	WarehouseOrderRepoFactory interface {
		WarehouseOrderRepository() ports.WarehouseOrderRepository
	}

	ShipmentRepoFactory interface {
		ShipmentRepository() ports.ShipmentRepository
	}

	PricingRuleRepoFactory interface {
		PricingRuleRepository() ports.PricingRuleRepository
	}

	InvoiceRepoFactory interface {
		InvoiceRepository() ports.InvoiceRepository
	}

	SubscriptionRepoFactory interface {
		SubscriptionRepository() ports.SubscriptionRepository
	}

	ClientRepoFactory interface {
		ClientRepository() ports.ClientRepository
	}

	// DeliveryUoW covers expected deliveries and the warehouse orders created
	// from them.
	DeliveryUoW interface {
		TxManager
		DeliveryRepoFactory
		WarehouseOrderRepoFactory
	}

	DeliveryUoWFactory interface {
		Create() DeliveryUoW
	}

	// ShipmentUoW covers packing, consolidation, transport choice, payment and
	// release.
	//
	//	uow := factory.Create()
	//	if err := uow.Begin(ctx); err != nil {
	//	    return err
	//	}
	//	defer func() { _ = uow.Rollback(ctx) }()
	//
	//	s, err := uow.ShipmentRepository().GetForUpdate(ctx, id)
	//	// ...
	//	return uow.Commit(ctx)
	ShipmentUoW interface {
		TxManager
		WarehouseOrderRepoFactory
		ShipmentRepoFactory
		InvoiceRepoFactory
	}

	ShipmentUoWFactory interface {
		Create() ShipmentUoW
	}

	PricingRuleUoW interface {
		TxManager
		PricingRuleRepoFactory
	}

	PricingRuleUoWFactory interface {
		Create() PricingRuleUoW
	}

	CapacityUoW interface {
		TxManager
		WarehouseOrderRepoFactory
		ClientRepoFactory
	}

	CapacityUoWFactory interface {
		Create() CapacityUoW
	}

	BillingUoW interface {
		TxManager
		SubscriptionRepoFactory
		ClientRepoFactory
		InvoiceRepoFactory
	}

	BillingUoWFactory interface {
		Create() BillingUoW
	}
)
