package http

import (
	"errors"
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/pricing"
	"fulfillment/internal/core/domain/model/shipment"
	"fulfillment/internal/core/domain/model/warehouse"
	"fulfillment/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

type CreateDeliveryRequest struct {
	ClientID     string     `json:"clientId" validate:"required,uuid"`
	SupplierName string     `json:"supplierName" validate:"max=200"`
	ExpectedAt   *time.Time `json:"expectedAt"`
}

type ReceiveDeliveryRequest struct {
	Condition string        `json:"condition" validate:"required"`
	Location  string        `json:"location" validate:"omitempty,max=32"`
	Units     []UnitRequest `json:"units" validate:"dive"`
}

// UnitRequest is one physical unit. PALLET units use count and
// totalWeightKg with optional per-pallet dimensions; PACKAGE units need all
// dimensions and weightKg.
type UnitRequest struct {
	Type          string  `json:"type" validate:"required"`
	Count         int     `json:"count" validate:"gte=0"`
	TotalWeightKg float64 `json:"totalWeightKg" validate:"gte=0"`
	WidthCm       float64 `json:"widthCm" validate:"gte=0"`
	LengthCm      float64 `json:"lengthCm" validate:"gte=0"`
	HeightCm      float64 `json:"heightCm" validate:"gte=0"`
	WeightKg      float64 `json:"weightKg" validate:"gte=0"`
}

func (u UnitRequest) toUnit() (warehouse.Unit, error) {
	t, err := kernel.ParseTransportType(u.Type)
	if err != nil {
		return nil, err
	}
	return unitOf(t, u.Count, u.TotalWeightKg, u.WidthCm, u.LengthCm, u.HeightCm, u.WeightKg), nil
}

func unitOf(t kernel.TransportType, count int, totalWeightKg, widthCm, lengthCm, heightCm, weightKg float64) warehouse.Unit {
	if t == kernel.Pallet {
		return warehouse.PalletUnit{
			Count:         count,
			TotalWeightKg: totalWeightKg,
			WidthCm:       widthCm,
			LengthCm:      lengthCm,
			HeightCm:      heightCm,
		}
	}
	return warehouse.ParcelUnit{WidthCm: widthCm, LengthCm: lengthCm, HeightCm: heightCm, WeightKg: weightKg}
}

func unitsOf(reqs []UnitRequest) ([]warehouse.Unit, error) {
	units := make([]warehouse.Unit, 0, len(reqs))
	var errList []error
	for i, r := range reqs {
		u, err := r.toUnit()
		if err != nil {
			errList = append(errList, fmt.Errorf("units[%d]: %w", i, err))
			continue
		}
		units = append(units, u)
	}
	return units, errors.Join(errList...)
}

func parseLocation(code string) (*kernel.Location, error) {
	if code == "" {
		return nil, nil
	}
	loc, err := kernel.ParseLocation(code)
	if err != nil {
		return nil, err
	}
	return &loc, nil
}

type RegisterCollectedOrderRequest struct {
	ClientID string `json:"clientId" validate:"required,uuid"`
	Location string `json:"location" validate:"omitempty,max=32"`
}

type PackOrderRequest struct {
	ShipmentType string            `json:"shipmentType" validate:"required"`
	Items        []PackItemRequest `json:"items" validate:"required,min=1,dive"`
	Notes        string            `json:"notes" validate:"max=2000"`
}

// PackItemRequest fields are read according to the order's shipmentType.
type PackItemRequest struct {
	Count         int     `json:"count" validate:"gte=0"`
	TotalWeightKg float64 `json:"totalWeightKg" validate:"gte=0"`
	WidthCm       float64 `json:"widthCm" validate:"gte=0"`
	LengthCm      float64 `json:"lengthCm" validate:"gte=0"`
	HeightCm      float64 `json:"heightCm" validate:"gte=0"`
	WeightKg      float64 `json:"weightKg" validate:"gte=0"`
}

func (r PackOrderRequest) units() ([]warehouse.Unit, error) {
	t, err := kernel.ParseTransportType(r.ShipmentType)
	if err != nil {
		return nil, err
	}
	units := make([]warehouse.Unit, 0, len(r.Items))
	for _, it := range r.Items {
		units = append(units, unitOf(t, it.Count, it.TotalWeightKg, it.WidthCm, it.LengthCm, it.HeightCm, it.WeightKg))
	}
	return units, nil
}

type CreateShipmentRequest struct {
	ClientID          string   `json:"clientId" validate:"required,uuid"`
	WarehouseOrderIDs []string `json:"warehouseOrderIds" validate:"required,min=1,dive,uuid"`
}

type TransportChoiceRequest struct {
	TransportChoice string               `json:"transportChoice" validate:"required"`
	PaymentMethod   string               `json:"paymentMethod"`
	OwnTransport    *OwnTransportRequest `json:"ownTransport"`
}

type OwnTransportRequest struct {
	VehicleRegistration string `json:"vehicleRegistration" validate:"max=20"`
	TrailerRegistration string `json:"trailerRegistration" validate:"max=20"`
	Carrier             string `json:"carrier" validate:"max=100"`
	TrackingNumber      string `json:"trackingNumber" validate:"max=100"`
	// PlannedLoadingDate is a calendar date, YYYY-MM-DD.
	PlannedLoadingDate string `json:"plannedLoadingDate" validate:"omitempty,datetime=2006-01-02"`
}

func (r *OwnTransportRequest) toDetails() (*shipment.OwnTransportDetails, error) {
	if r == nil {
		return nil, nil
	}
	d := &shipment.OwnTransportDetails{
		VehicleRegistration: r.VehicleRegistration,
		TrailerRegistration: r.TrailerRegistration,
		Carrier:             r.Carrier,
		TrackingNumber:      r.TrackingNumber,
	}
	if r.PlannedLoadingDate != "" {
		date, err := time.Parse(time.DateOnly, r.PlannedLoadingDate)
		if err != nil {
			return nil, errs.NewValueIsInvalidErrorWithCause("plannedLoadingDate", err)
		}
		d.PlannedLoadingDate = &date
	}
	return d, nil
}

type ReleaseShipmentRequest struct {
	VehicleRegistration string `json:"vehicleRegistration" validate:"max=20"`
}

type PricingRuleRequest struct {
	Name          string          `json:"name" validate:"required,max=100"`
	TransportType string          `json:"transportType" validate:"required"`
	RuleType      string          `json:"ruleType" validate:"required"`
	PalletMin     *int            `json:"palletMin"`
	PalletMax     *int            `json:"palletMax"`
	VolumeMinCbm  *float64        `json:"volumeMinCbm"`
	VolumeMaxCbm  *float64        `json:"volumeMaxCbm"`
	WeightMinKg   *float64        `json:"weightMinKg"`
	WeightMaxKg   *float64        `json:"weightMaxKg"`
	PriceEur      decimal.Decimal `json:"priceEur"`
	Priority      int             `json:"priority"`
	IsActive      *bool           `json:"isActive"`
}

// params converts the request; a missing isActive means active.
func (r PricingRuleRequest) params() (pricing.Params, error) {
	transportType, errTransport := kernel.ParseTransportType(r.TransportType)
	ruleType, errRule := pricing.ParseRuleType(r.RuleType)
	if err := errors.Join(errTransport, errRule); err != nil {
		return pricing.Params{}, err
	}

	active := true
	if r.IsActive != nil {
		active = *r.IsActive
	}
	return pricing.Params{
		Name:          r.Name,
		TransportType: transportType,
		Type:          ruleType,
		PalletCount:   pricing.Range[int]{Min: r.PalletMin, Max: r.PalletMax},
		VolumeCbm:     pricing.Range[float64]{Min: r.VolumeMinCbm, Max: r.VolumeMaxCbm},
		WeightKg:      pricing.Range[float64]{Min: r.WeightMinKg, Max: r.WeightMaxKg},
		PriceEur:      r.PriceEur,
		Priority:      r.Priority,
		IsActive:      active,
	}, nil
}

type SubscriptionInvoiceRequest struct {
	Plan         string `json:"plan" validate:"required"`
	PeriodMonths int    `json:"periodMonths" validate:"required"`
	VoucherCode  string `json:"voucherCode" validate:"max=64"`
}
