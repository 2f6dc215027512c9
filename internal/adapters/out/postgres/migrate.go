package postgres

import (
	"fmt"

	"fulfillment/internal/adapters/out/postgres/clientrepo"
	"fulfillment/internal/adapters/out/postgres/deliveryrepo"
	"fulfillment/internal/adapters/out/postgres/invoicerepo"
	"fulfillment/internal/adapters/out/postgres/pricingrepo"
	"fulfillment/internal/adapters/out/postgres/shipmentrepo"
	"fulfillment/internal/adapters/out/postgres/subscriptionrepo"
	"fulfillment/internal/adapters/out/postgres/warehouserepo"

	"gorm.io/gorm"
)

// Tables lists every table in truncation-safe order.
var Tables = []string{
	"shipment_items",
	"shipments",
	"invoices",
	"packages",
	"warehouse_orders",
	"deliveries",
	"pricing_rules",
	"clients",
	"vouchers",
	"setup_fees",
}

// Migrate creates or updates the schema and the delivery number sequence.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&deliveryrepo.DeliveryDTO{},
		&warehouserepo.OrderDTO{},
		&warehouserepo.PackageDTO{},
		&shipmentrepo.ShipmentDTO{},
		&shipmentrepo.ItemDTO{},
		&pricingrepo.RuleDTO{},
		&invoicerepo.InvoiceDTO{},
		&clientrepo.ClientDTO{},
		&subscriptionrepo.VoucherDTO{},
		&subscriptionrepo.SetupFeeDTO{},
	)
	if err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	if err = db.Exec("CREATE SEQUENCE IF NOT EXISTS " + deliveryrepo.NumberSequence).Error; err != nil {
		return fmt.Errorf("create delivery number sequence: %w", err)
	}

	return nil
}
