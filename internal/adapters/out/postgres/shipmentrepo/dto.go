// Package shipmentrepo persists shipments. Members are linked through
// shipment_items; a partial unique index keeps a warehouse order in at most
// one active shipment.
package shipmentrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/shipment"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ActiveItemIndex is the partial unique index over active member links.
const ActiveItemIndex = "ux_shipment_items_active_order"

type ShipmentDTO struct {
	ID               uuid.UUID        `gorm:"type:uuid;primaryKey"`
	ClientID         uuid.UUID        `gorm:"type:uuid;not null;index"`
	Status           int              `gorm:"type:smallint;not null;index"`
	DominantType     int              `gorm:"type:smallint;not null;default:0"`
	PriceEur         *decimal.Decimal `gorm:"type:numeric(12,2)"`
	PricingRuleID    *uuid.UUID       `gorm:"type:uuid"`
	NeedsManualQuote bool             `gorm:"not null;default:false"`
	Choice           int              `gorm:"type:smallint;not null;default:0"`
	PaymentMethod    int              `gorm:"type:smallint;not null;default:0"`
	OwnTransport     OwnTransportDTO  `gorm:"embedded;embeddedPrefix:own_"`
	InvoiceID        *uuid.UUID       `gorm:"type:uuid"`
	CreatedAt        time.Time        `gorm:"autoCreateTime"`
	Items            []ItemDTO        `gorm:"foreignKey:ShipmentID;constraint:OnDelete:CASCADE"`
}

func (ShipmentDTO) TableName() string {
	return "shipments"
}

// OwnTransportDTO holds the client's pickup details; all empty means none.
type OwnTransportDTO struct {
	VehicleRegistration string     `gorm:"type:varchar(32);not null;default:''"`
	TrailerRegistration string     `gorm:"type:varchar(32);not null;default:''"`
	Carrier             string     `gorm:"type:varchar(128);not null;default:''"`
	TrackingNumber      string     `gorm:"type:varchar(128);not null;default:''"`
	PlannedLoadingDate  *time.Time `gorm:"type:date"`
}

// ItemDTO links a warehouse order to a shipment. Links of released shipments
// stay for history with Active set to false.
type ItemDTO struct {
	ShipmentID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	WarehouseOrderID uuid.UUID `gorm:"type:uuid;primaryKey;index:ux_shipment_items_active_order,unique,where:active = true"`
	Position         int       `gorm:"not null"`
	Active           bool      `gorm:"not null;default:true"`
}

func (ItemDTO) TableName() string {
	return "shipment_items"
}

func fromDomain(s *shipment.Shipment) ShipmentDTO {
	dto := ShipmentDTO{
		ID:               s.ID().Bytes(),
		ClientID:         s.ClientID().Bytes(),
		Status:           int(s.Status()),
		DominantType:     int(s.DominantType()),
		PriceEur:         s.PriceEur(),
		PricingRuleID:    rawID(s.PricingRuleID()),
		NeedsManualQuote: s.NeedsManualQuote(),
		Choice:           int(s.Choice()),
		PaymentMethod:    int(s.PaymentMethod()),
		InvoiceID:        rawID(s.InvoiceID()),
	}

	if d := s.OwnTransport(); d != nil {
		dto.OwnTransport = OwnTransportDTO{
			VehicleRegistration: d.VehicleRegistration,
			TrailerRegistration: d.TrailerRegistration,
			Carrier:             d.Carrier,
			TrackingNumber:      d.TrackingNumber,
			PlannedLoadingDate:  d.PlannedLoadingDate,
		}
	}

	for i, orderID := range s.OrderIDs() {
		dto.Items = append(dto.Items, ItemDTO{
			ShipmentID:       dto.ID,
			WarehouseOrderID: orderID.Bytes(),
			Position:         i,
			Active:           s.IsActive(),
		})
	}

	return dto
}

func toDomain(dto ShipmentDTO) (*shipment.Shipment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	clientID, err := kernel.UUIDFromBytes(dto.ClientID[:])
	if err != nil {
		return nil, err
	}
	ruleID, err := domainID(dto.PricingRuleID)
	if err != nil {
		return nil, err
	}
	invoiceID, err := domainID(dto.InvoiceID)
	if err != nil {
		return nil, err
	}

	orderIDs := make([]kernel.UUID, 0, len(dto.Items))
	for _, item := range dto.Items {
		orderID, itemErr := kernel.UUIDFromBytes(item.WarehouseOrderID[:])
		if itemErr != nil {
			return nil, itemErr
		}
		orderIDs = append(orderIDs, orderID)
	}

	var own *shipment.OwnTransportDetails
	details := shipment.OwnTransportDetails{
		VehicleRegistration: dto.OwnTransport.VehicleRegistration,
		TrailerRegistration: dto.OwnTransport.TrailerRegistration,
		Carrier:             dto.OwnTransport.Carrier,
		TrackingNumber:      dto.OwnTransport.TrackingNumber,
		PlannedLoadingDate:  dto.OwnTransport.PlannedLoadingDate,
	}
	if !details.IsEmpty() {
		own = &details
	}

	return shipment.RestoreShipment(shipment.RestoreState{
		ID:               id,
		ClientID:         clientID,
		Status:           shipment.Status(dto.Status),
		OrderIDs:         orderIDs,
		DominantType:     kernel.TransportType(dto.DominantType),
		PriceEur:         dto.PriceEur,
		PricingRuleID:    ruleID,
		NeedsManualQuote: dto.NeedsManualQuote,
		Choice:           shipment.Choice(dto.Choice),
		PaymentMethod:    shipment.PaymentMethod(dto.PaymentMethod),
		OwnTransport:     own,
		InvoiceID:        invoiceID,
	})
}

func rawID(id *kernel.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	raw := id.Bytes()
	return &raw
}

func domainID(raw *uuid.UUID) (*kernel.UUID, error) {
	if raw == nil {
		return nil, nil //nolint:nilnil // nullable column
	}
	id, err := kernel.UUIDFromBytes(raw[:])
	if err != nil {
		return nil, err
	}
	return &id, nil
}
