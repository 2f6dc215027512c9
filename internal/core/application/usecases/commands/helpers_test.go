package commands_test

import (
	"testing"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/pricing"
	"fulfillment/internal/core/domain/model/shipment"
	"fulfillment/internal/core/domain/model/warehouse"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var parcel = warehouse.ParcelUnit{WidthCm: 50, LengthCm: 40, HeightCm: 30, WeightKg: 10}

func waitingOrder(t *testing.T, clientID kernel.UUID) *warehouse.Order {
	t.Helper()
	o, err := warehouse.NewCollectedOrder(kernel.NewUUID(), clientID, nil)
	require.NoError(t, err)
	return o
}

func packedOrder(t *testing.T, clientID kernel.UUID, units ...warehouse.Unit) *warehouse.Order {
	t.Helper()
	if len(units) == 0 {
		units = []warehouse.Unit{parcel}
	}
	o := waitingOrder(t, clientID)
	require.NoError(t, o.Pack(units, "", time.Now()))
	return o
}

func shipmentOf(t *testing.T, clientID kernel.UUID, members ...*warehouse.Order) *shipment.Shipment {
	t.Helper()
	ids := make([]kernel.UUID, 0, len(members))
	for _, o := range members {
		ids = append(ids, o.ID())
	}
	s, err := shipment.NewShipment(kernel.NewUUID(), clientID, ids)
	require.NoError(t, err)
	return s
}

func pricedShipment(t *testing.T, clientID kernel.UUID, price int64, members ...*warehouse.Order) *shipment.Shipment {
	t.Helper()
	s := shipmentOf(t, clientID, members...)
	changed, err := s.ApplyQuote(kernel.Package, &pricing.Quote{RuleID: kernel.NewUUID(), PriceEur: decimal.NewFromInt(price)})
	require.NoError(t, err)
	require.True(t, changed)
	return s
}

func packageRule(t *testing.T, price int64) *pricing.Rule {
	t.Helper()
	r, err := pricing.NewRule(kernel.NewUUID(), pricing.Params{
		Name:          "parcels",
		TransportType: kernel.Package,
		Type:          pricing.DynamicM3Weight,
		VolumeCbm:     pricing.AtMost(0.1),
		PriceEur:      decimal.NewFromInt(price),
		IsActive:      true,
	})
	require.NoError(t, err)
	return r
}
