package services_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/pricing"
	"fulfillment/internal/core/domain/model/shipment"
	"fulfillment/internal/core/domain/model/warehouse"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShipmentConsolidator_Consolidate(t *testing.T) {
	consolidator := services.NewShipmentConsolidator(services.NewTransportPriceMatcher())
	clientID := kernel.NewUUID()

	t.Run("should price a single parcel shipment", func(t *testing.T) {
		rule := newRule(t, pricing.Params{
			TransportType: kernel.Package, Type: pricing.DynamicM3Weight,
			VolumeCbm: pricing.AtMost(0.1), WeightKg: pricing.AtMost(20.0), PriceEur: eur(35),
		})
		order := packedOrder(t, clientID, warehouse.ParcelUnit{WidthCm: 50, LengthCm: 40, HeightCm: 30, WeightKg: 10})
		s := shipmentOf(t, clientID, order)

		result, err := consolidator.Consolidate(s, []*warehouse.Order{order}, []*pricing.Rule{rule})

		require.NoError(t, err)
		assert.True(t, result.Ready)
		assert.True(t, result.Changed)
		assert.InDelta(t, 0.063, result.Query.VolumeCbm, 1e-9)
		assert.Equal(t, kernel.Package, result.Query.TransportType)
		assert.Equal(t, warehouse.ReadyToShip, order.Status())
		assert.Equal(t, shipment.AwaitingAcceptance, s.Status())
		assert.Equal(t, "35.00", s.PriceEur().StringFixed(2))
		assert.True(t, rule.ID().IsEqual(*s.PricingRuleID()))
	})

	t.Run("should wait for every member and price after the last one is packed", func(t *testing.T) {
		rule := newRule(t, pricing.Params{
			TransportType: kernel.Package, Type: pricing.DynamicM3Weight, PriceEur: eur(60),
		})
		packed := packedOrder(t, clientID, warehouse.ParcelUnit{WidthCm: 20, LengthCm: 20, HeightCm: 20, WeightKg: 2})
		waiting := waitingOrder(t, clientID)
		s := shipmentOf(t, clientID, packed, waiting)
		members := []*warehouse.Order{packed, waiting}

		result, err := consolidator.Consolidate(s, members, []*pricing.Rule{rule})

		require.NoError(t, err)
		assert.False(t, result.Ready)
		assert.False(t, result.Changed)
		assert.Nil(t, s.PriceEur())
		assert.Equal(t, shipment.Pending, s.Status())

		require.NoError(t, waiting.Pack([]warehouse.Unit{
			warehouse.ParcelUnit{WidthCm: 30, LengthCm: 30, HeightCm: 30, WeightKg: 4},
		}, "", packedAt))

		result, err = consolidator.Consolidate(s, members, []*pricing.Rule{rule})

		require.NoError(t, err)
		assert.True(t, result.Ready)
		assert.Equal(t, 2, result.Query.PackageCount)
		assert.InDelta(t, 6.0, result.Query.WeightKg, 1e-9)
		require.NotNil(t, s.PriceEur())
		assert.Equal(t, "60.00", s.PriceEur().StringFixed(2))
	})

	t.Run("should be idempotent", func(t *testing.T) {
		rule := newRule(t, pricing.Params{
			TransportType: kernel.Pallet, Type: pricing.FixedPerUnit, PriceEur: eur(40),
		})
		order := packedOrder(t, clientID, warehouse.PalletUnit{Count: 3, TotalWeightKg: 450})
		s := shipmentOf(t, clientID, order)
		members := []*warehouse.Order{order}

		first, err := consolidator.Consolidate(s, members, []*pricing.Rule{rule})
		require.NoError(t, err)
		price := *s.PriceEur()
		ruleID := *s.PricingRuleID()

		cheaper := newRule(t, pricing.Params{
			TransportType: kernel.Pallet, Type: pricing.FixedPerUnit, PriceEur: eur(1), Priority: 10,
		})
		second, err := consolidator.Consolidate(s, members, []*pricing.Rule{cheaper, rule})

		require.NoError(t, err)
		assert.True(t, first.Changed)
		assert.False(t, second.Changed)
		assert.Equal(t, "120.00", price.StringFixed(2))
		assert.True(t, price.Equal(*s.PriceEur()))
		assert.True(t, ruleID.IsEqual(*s.PricingRuleID()))
		assert.Equal(t, shipment.AwaitingAcceptance, s.Status())
	})

	t.Run("should bill mixed shipments as pallets", func(t *testing.T) {
		palletRule := newRule(t, pricing.Params{
			TransportType: kernel.Pallet, Type: pricing.FixedPerUnit, PriceEur: eur(40),
		})
		packageRule := newRule(t, pricing.Params{
			TransportType: kernel.Package, Type: pricing.DynamicM3Weight, PriceEur: eur(15), Priority: 99,
		})
		pallets := packedOrder(t, clientID, warehouse.PalletUnit{Count: 2, TotalWeightKg: 300})
		parcel := packedOrder(t, clientID, warehouse.ParcelUnit{WidthCm: 40, LengthCm: 30, HeightCm: 20, WeightKg: 5})
		s := shipmentOf(t, clientID, pallets, parcel)

		result, err := consolidator.Consolidate(s, []*warehouse.Order{pallets, parcel}, []*pricing.Rule{packageRule, palletRule})

		require.NoError(t, err)
		assert.Equal(t, kernel.Pallet, result.Query.TransportType)
		assert.Equal(t, 2, result.Query.PalletCount)
		assert.InDelta(t, 305.0, result.Query.WeightKg, 1e-9)
		assert.True(t, palletRule.ID().IsEqual(*s.PricingRuleID()))
		assert.Equal(t, "80.00", s.PriceEur().StringFixed(2))
	})

	t.Run("should leave the shipment unpriced when no rule matches", func(t *testing.T) {
		order := packedOrder(t, clientID, warehouse.PalletUnit{Count: 30, TotalWeightKg: 9000})
		s := shipmentOf(t, clientID, order)
		narrow := newRule(t, pricing.Params{
			TransportType: kernel.Pallet, Type: pricing.DynamicM3Weight, PalletCount: pricing.Between(1, 4), PriceEur: eur(120),
		})

		result, err := consolidator.Consolidate(s, []*warehouse.Order{order}, []*pricing.Rule{narrow})

		require.NoError(t, err)
		assert.True(t, result.NeedsManualQuote())
		assert.Nil(t, s.PriceEur())
		assert.True(t, s.NeedsManualQuote())
		assert.Equal(t, shipment.Pending, s.Status())
	})

	t.Run("should hand an own-transport shipment to loading instead of pricing it", func(t *testing.T) {
		order := packedOrder(t, clientID, warehouse.PalletUnit{Count: 1, TotalWeightKg: 100})
		s := shipmentOf(t, clientID, order)
		require.NoError(t, s.ChooseOwnTransport(kernel.Pallet, nil))
		rule := newRule(t, pricing.Params{TransportType: kernel.Pallet, Type: pricing.FixedPerUnit, PriceEur: eur(40)})

		result, err := consolidator.Consolidate(s, []*warehouse.Order{order}, []*pricing.Rule{rule})

		require.NoError(t, err)
		assert.True(t, result.Ready)
		assert.True(t, result.Changed)
		assert.True(t, result.Loadable)
		assert.Nil(t, s.PriceEur())
		assert.Equal(t, shipment.ReadyForLoading, s.Status())

		again, err := consolidator.Consolidate(s, []*warehouse.Order{order}, []*pricing.Rule{rule})

		require.NoError(t, err)
		assert.False(t, again.Changed)
		assert.Nil(t, s.PriceEur())
	})

	t.Run("should keep an own-transport shipment pending while a member is unpacked", func(t *testing.T) {
		packed := packedOrder(t, clientID, warehouse.PalletUnit{Count: 1, TotalWeightKg: 100})
		waiting := waitingOrder(t, clientID)
		s := shipmentOf(t, clientID, packed, waiting)
		require.NoError(t, s.ChooseOwnTransport(kernel.Pallet, nil))

		result, err := consolidator.Consolidate(s, []*warehouse.Order{packed, waiting}, nil)

		require.NoError(t, err)
		assert.False(t, result.Ready)
		assert.False(t, result.Changed)
		assert.Equal(t, shipment.Pending, s.Status())
	})

	t.Run("should require every member to be loaded", func(t *testing.T) {
		a := packedOrder(t, clientID, warehouse.PalletUnit{Count: 1, TotalWeightKg: 100})
		b := packedOrder(t, clientID, warehouse.PalletUnit{Count: 1, TotalWeightKg: 100})
		s := shipmentOf(t, clientID, a, b)

		_, err := consolidator.Consolidate(s, []*warehouse.Order{a}, nil)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}
