// Package invoicerepo persists transport and subscription invoices.
package invoicerepo

import (
	"time"

	"fulfillment/internal/core/domain/model/invoice"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ShipmentIndex makes a second transport invoice for a shipment fail.
const ShipmentIndex = "ux_invoices_shipment_id"

type InvoiceDTO struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ClientID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	Kind       int             `gorm:"type:smallint;not null"`
	ShipmentID *uuid.UUID      `gorm:"type:uuid;uniqueIndex:ux_invoices_shipment_id"`
	AmountEur  decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Status     int             `gorm:"type:smallint;not null"`
	IssuedAt   time.Time       `gorm:"type:timestamptz;not null"`
	PaidAt     *time.Time      `gorm:"type:timestamptz"`
}

func (InvoiceDTO) TableName() string {
	return "invoices"
}

func fromDomain(i *invoice.Invoice) InvoiceDTO {
	dto := InvoiceDTO{
		ID:        i.ID().Bytes(),
		ClientID:  i.ClientID().Bytes(),
		Kind:      int(i.Kind()),
		AmountEur: i.AmountEur(),
		Status:    int(i.Status()),
		IssuedAt:  i.IssuedAt(),
		PaidAt:    i.PaidAt(),
	}
	if id := i.ShipmentID(); id != nil {
		raw := id.Bytes()
		dto.ShipmentID = &raw
	}
	return dto
}

func toDomain(dto InvoiceDTO) (*invoice.Invoice, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	clientID, err := kernel.UUIDFromBytes(dto.ClientID[:])
	if err != nil {
		return nil, err
	}

	var shipmentID *kernel.UUID
	if dto.ShipmentID != nil {
		sID, sErr := kernel.UUIDFromBytes((*dto.ShipmentID)[:])
		if sErr != nil {
			return nil, sErr
		}
		shipmentID = &sID
	}

	return invoice.RestoreInvoice(
		id,
		clientID,
		invoice.Kind(dto.Kind),
		shipmentID,
		dto.AmountEur,
		invoice.Status(dto.Status),
		dto.IssuedAt,
		dto.PaidAt,
	)
}
