package queries

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetShipmentQueryIsNotConstructed = errors.New(
	"GetShipmentQuery must be created via NewGetShipmentQuery constructor",
)

// GetShipmentQuery reads one shipment with its members. When ClientID is set
// a shipment of another client is reported as not found.
//
// Example:
//
//	query, err := NewGetShipmentQuery(shipmentID, &clientID)
//	if err != nil {
//	    return err
//	}
//	view, err := handler.Handle(ctx, query)
type GetShipmentQuery struct {
	shipmentID kernel.UUID
	clientID   *kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetShipmentQuery(shipmentID kernel.UUID, clientID *kernel.UUID) (GetShipmentQuery, error) {
	if err := shipmentID.Validate(); err != nil {
		return GetShipmentQuery{}, errs.NewValueIsRequiredErrorWithCause("shipmentId", err)
	}
	if clientID != nil {
		if err := clientID.Validate(); err != nil {
			return GetShipmentQuery{}, errs.NewValueIsRequiredErrorWithCause("clientId", err)
		}
	}
	return GetShipmentQuery{shipmentID: shipmentID, clientID: clientID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetShipmentQuery) Validate() error {
	return q.guard.Validate(ErrGetShipmentQueryIsNotConstructed)
}

// GetShipmentQueryResponse is the read model of a shipment. Enumerations are
// given in their wire spelling.
type GetShipmentQueryResponse struct {
	ID               kernel.UUID
	ClientID         kernel.UUID
	Status           string
	TransportType    string
	PriceEur         *decimal.Decimal
	PricingRuleID    *kernel.UUID
	NeedsManualQuote bool
	Choice           string
	PaymentMethod    string
	InvoiceID        *kernel.UUID
	OwnTransport     *OwnTransportView
	CreatedAt        time.Time
	Members          []ShipmentMemberView
	TotalVolumeCbm   float64
	TotalWeightKg    float64
}

type OwnTransportView struct {
	VehicleRegistration string
	TrailerRegistration string
	Carrier             string
	TrackingNumber      string
	PlannedLoadingDate  *time.Time
}

type ShipmentMemberView struct {
	WarehouseOrderID kernel.UUID
	TrackingNumber   string
	Status           string
	VolumeCbm        float64
	WeightKg         float64
}
