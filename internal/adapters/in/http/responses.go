package http

import (
	"time"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/pricing"
	"fulfillment/internal/core/domain/services"

	"github.com/shopspring/decimal"
)

type CreatedResponse struct {
	ID string `json:"id"`
}

type ReceiveDeliveryResponse struct {
	WarehouseOrderID string `json:"warehouseOrderId"`
	TrackingNumber   string `json:"trackingNumber"`
	DeliveryNumber   int64  `json:"deliveryNumber"`
	DeliveryStatus   string `json:"deliveryStatus"`
}

type RegisterCollectedOrderResponse struct {
	ID             string `json:"id"`
	TrackingNumber string `json:"trackingNumber"`
}

// ShipmentPricingResponse is the pricing state of a shipment. A ready but
// unpriced shipment has no price and needsManualQuote set.
type ShipmentPricingResponse struct {
	ShipmentID         string           `json:"shipmentId"`
	Status             string           `json:"status"`
	TransportPrice     *decimal.Decimal `json:"transportPrice"`
	TransportPricingID *string          `json:"transportPricingId"`
	NeedsManualQuote   bool             `json:"needsManualQuote"`
}

func shipmentPricingResponse(p commands.ShipmentPricing) ShipmentPricingResponse {
	return ShipmentPricingResponse{
		ShipmentID:         p.ShipmentID.String(),
		Status:             p.Status.String(),
		TransportPrice:     p.PriceEur,
		TransportPricingID: optionalString(p.PricingRuleID),
		NeedsManualQuote:   p.NeedsManualQuote,
	}
}

type ConsolidateShipmentResponse struct {
	ShipmentPricingResponse
	Ready bool `json:"ready"`
}

type PackOrderResponse struct {
	OrderID            string           `json:"orderId"`
	Status             string           `json:"status"`
	TotalVolume        float64          `json:"totalVolume"`
	TotalWeight        float64          `json:"totalWeight"`
	ShipmentID         *string          `json:"shipmentId,omitempty"`
	TransportPrice     *decimal.Decimal `json:"transportPrice"`
	TransportPricingID *string          `json:"transportPricingId"`
	NeedsManualQuote   bool             `json:"needsManualQuote"`
}

func packOrderResponse(r commands.PackOrderResult) PackOrderResponse {
	resp := PackOrderResponse{
		OrderID:     r.OrderID.String(),
		Status:      r.Status.String(),
		TotalVolume: r.TotalVolumeCbm,
		TotalWeight: r.TotalWeightKg,
	}
	if r.Shipment != nil {
		id := r.Shipment.ShipmentID.String()
		resp.ShipmentID = &id
		resp.TransportPrice = r.Shipment.PriceEur
		resp.TransportPricingID = optionalString(r.Shipment.PricingRuleID)
		resp.NeedsManualQuote = r.Shipment.NeedsManualQuote
	}
	return resp
}

type TransportChoiceResponse struct {
	ShipmentID    string  `json:"shipmentId"`
	Status        string  `json:"status"`
	Choice        string  `json:"transportChoice"`
	PaymentMethod string  `json:"paymentMethod,omitempty"`
	InvoiceID     *string `json:"invoiceId,omitempty"`
}

type PaymentResponse struct {
	Status string `json:"status"`
}

type OwnTransportResponse struct {
	VehicleRegistration string     `json:"vehicleRegistration,omitempty"`
	TrailerRegistration string     `json:"trailerRegistration,omitempty"`
	Carrier             string     `json:"carrier,omitempty"`
	TrackingNumber      string     `json:"trackingNumber,omitempty"`
	PlannedLoadingDate  *time.Time `json:"plannedLoadingDate,omitempty"`
}

type ShipmentMemberResponse struct {
	WarehouseOrderID string  `json:"warehouseOrderId"`
	TrackingNumber   string  `json:"trackingNumber"`
	Status           string  `json:"status"`
	VolumeCbm        float64 `json:"volumeCbm"`
	WeightKg         float64 `json:"weightKg"`
}

type ShipmentResponse struct {
	ID                 string                   `json:"id"`
	ClientID           string                   `json:"clientId"`
	Status             string                   `json:"status"`
	TransportType      string                   `json:"transportType"`
	TransportPrice     *decimal.Decimal         `json:"transportPrice"`
	TransportPricingID *string                  `json:"transportPricingId"`
	NeedsManualQuote   bool                     `json:"needsManualQuote"`
	TransportChoice    string                   `json:"transportChoice,omitempty"`
	PaymentMethod      string                   `json:"paymentMethod,omitempty"`
	InvoiceID          *string                  `json:"invoiceId,omitempty"`
	OwnTransport       *OwnTransportResponse    `json:"ownTransport,omitempty"`
	Members            []ShipmentMemberResponse `json:"members"`
	TotalVolumeCbm     float64                  `json:"totalVolumeCbm"`
	TotalWeightKg      float64                  `json:"totalWeightKg"`
	CreatedAt          time.Time                `json:"createdAt"`
}

func shipmentResponse(v queries.GetShipmentQueryResponse) ShipmentResponse {
	resp := ShipmentResponse{
		ID:                 v.ID.String(),
		ClientID:           v.ClientID.String(),
		Status:             v.Status,
		TransportType:      v.TransportType,
		TransportPrice:     v.PriceEur,
		TransportPricingID: optionalString(v.PricingRuleID),
		NeedsManualQuote:   v.NeedsManualQuote,
		TransportChoice:    v.Choice,
		PaymentMethod:      v.PaymentMethod,
		InvoiceID:          optionalString(v.InvoiceID),
		Members:            make([]ShipmentMemberResponse, 0, len(v.Members)),
		TotalVolumeCbm:     v.TotalVolumeCbm,
		TotalWeightKg:      v.TotalWeightKg,
		CreatedAt:          v.CreatedAt,
	}
	if v.OwnTransport != nil {
		resp.OwnTransport = &OwnTransportResponse{
			VehicleRegistration: v.OwnTransport.VehicleRegistration,
			TrailerRegistration: v.OwnTransport.TrailerRegistration,
			Carrier:             v.OwnTransport.Carrier,
			TrackingNumber:      v.OwnTransport.TrackingNumber,
			PlannedLoadingDate:  v.OwnTransport.PlannedLoadingDate,
		}
	}
	for _, m := range v.Members {
		resp.Members = append(resp.Members, ShipmentMemberResponse{
			WarehouseOrderID: m.WarehouseOrderID.String(),
			TrackingNumber:   m.TrackingNumber,
			Status:           m.Status,
			VolumeCbm:        m.VolumeCbm,
			WeightKg:         m.WeightKg,
		})
	}
	return resp
}

type WarehouseOrderResponse struct {
	ID               string     `json:"id"`
	TrackingNumber   string     `json:"trackingNumber"`
	Status           string     `json:"status"`
	Location         string     `json:"location,omitempty"`
	SourceDeliveryID *string    `json:"sourceDeliveryId,omitempty"`
	PackageCount     int        `json:"packageCount"`
	VolumeCbm        float64    `json:"volumeCbm"`
	WeightKg         float64    `json:"weightKg"`
	PackedAt         *time.Time `json:"packedAt,omitempty"`
	CreatedAt        time.Time  `json:"createdAt"`
}

func warehouseOrderResponse(v queries.WarehouseOrderView) WarehouseOrderResponse {
	return WarehouseOrderResponse{
		ID:               v.ID.String(),
		TrackingNumber:   v.TrackingNumber,
		Status:           v.Status,
		Location:         v.Location,
		SourceDeliveryID: optionalString(v.SourceDeliveryID),
		PackageCount:     v.PackageCount,
		VolumeCbm:        v.VolumeCbm,
		WeightKg:         v.WeightKg,
		PackedAt:         v.PackedAt,
		CreatedAt:        v.CreatedAt,
	}
}

type PricingRuleResponse struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	TransportType string          `json:"transportType"`
	RuleType      string          `json:"ruleType"`
	PalletMin     *int            `json:"palletMin"`
	PalletMax     *int            `json:"palletMax"`
	VolumeMinCbm  *float64        `json:"volumeMinCbm"`
	VolumeMaxCbm  *float64        `json:"volumeMaxCbm"`
	WeightMinKg   *float64        `json:"weightMinKg"`
	WeightMaxKg   *float64        `json:"weightMaxKg"`
	PriceEur      decimal.Decimal `json:"priceEur"`
	Priority      int             `json:"priority"`
	IsActive      bool            `json:"isActive"`
}

func pricingRuleResponse(r *pricing.Rule) PricingRuleResponse {
	p := r.Params()
	return PricingRuleResponse{
		ID:            r.ID().String(),
		Name:          p.Name,
		TransportType: p.TransportType.String(),
		RuleType:      p.Type.String(),
		PalletMin:     p.PalletCount.Min,
		PalletMax:     p.PalletCount.Max,
		VolumeMinCbm:  p.VolumeCbm.Min,
		VolumeMaxCbm:  p.VolumeCbm.Max,
		WeightMinKg:   p.WeightKg.Min,
		WeightMaxKg:   p.WeightKg.Max,
		PriceEur:      p.PriceEur,
		Priority:      p.Priority,
		IsActive:      p.IsActive,
	}
}

func pricingRuleViewResponse(v queries.PricingRuleView) PricingRuleResponse {
	return PricingRuleResponse{
		ID:            v.ID.String(),
		Name:          v.Name,
		TransportType: v.TransportType,
		RuleType:      v.RuleType,
		PalletMin:     v.PalletMin,
		PalletMax:     v.PalletMax,
		VolumeMinCbm:  v.VolumeMinCbm,
		VolumeMaxCbm:  v.VolumeMaxCbm,
		WeightMinKg:   v.WeightMinKg,
		WeightMaxKg:   v.WeightMaxKg,
		PriceEur:      v.PriceEur,
		Priority:      v.Priority,
		IsActive:      v.IsActive,
	}
}

// SubscriptionQuoteResponse amounts are rounded to cents.
type SubscriptionQuoteResponse struct {
	InvoiceID      string `json:"invoiceId,omitempty"`
	PeriodEur      string `json:"periodEur"`
	DiscountEur    string `json:"discountEur"`
	SetupFeeEur    string `json:"setupFeeEur"`
	VoucherEur     string `json:"voucherEur"`
	TotalEur       string `json:"totalEur"`
	VoucherApplied bool   `json:"voucherApplied"`
}

func subscriptionQuoteResponse(q services.SubscriptionQuote) SubscriptionQuoteResponse {
	return SubscriptionQuoteResponse{
		PeriodEur:      q.PeriodEur.StringFixed(2),
		DiscountEur:    q.DiscountEur.StringFixed(2),
		SetupFeeEur:    q.SetupFeeEur.StringFixed(2),
		VoucherEur:     q.VoucherEur.StringFixed(2),
		TotalEur:       q.TotalEur.StringFixed(2),
		VoucherApplied: q.VoucherApplied,
	}
}

func optionalString(id *kernel.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}
