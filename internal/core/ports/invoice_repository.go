package ports

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/invoice"
	"fulfillment/internal/core/domain/model/kernel"
)

// ErrInvoiceAlreadyExists is returned by Add when the shipment already has a
// transport invoice.
var ErrInvoiceAlreadyExists = errors.New("invoice already exists")

type InvoiceRepository interface {
	Add(ctx context.Context, aggregate *invoice.Invoice) error
	Update(ctx context.Context, aggregate *invoice.Invoice) error
	Get(ctx context.Context, id kernel.UUID) (*invoice.Invoice, error)
	GetByShipment(ctx context.Context, shipmentID kernel.UUID) (*invoice.Invoice, error)
}
