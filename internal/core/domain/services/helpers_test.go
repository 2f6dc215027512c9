package services_test

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

var packedAt = time.Date(2026, 4, 10, 9, 30, 0, 0, time.UTC)

func newRule(t *testing.T, params pricing.Params) *pricing.Rule {
	t.Helper()
	params.IsActive = true
	if params.Name == "" {
		params.Name = "rule"
	}
	r, err := pricing.NewRule(kernel.NewUUID(), params)
	require.NoError(t, err)
	return r
}

func eur(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

func ptr[T any](v T) *T {
	return &v
}

func packedOrder(t *testing.T, clientID kernel.UUID, units ...warehouse.Unit) *warehouse.Order {
	t.Helper()
	o := waitingOrder(t, clientID)
	require.NoError(t, o.Pack(units, "", packedAt))
	return o
}

func waitingOrder(t *testing.T, clientID kernel.UUID) *warehouse.Order {
	t.Helper()
	o, err := warehouse.NewCollectedOrder(kernel.NewUUID(), clientID, nil)
	require.NoError(t, err)
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
