package pricing_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/pricing"
	"fulfillment/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func palletParams() pricing.Params {
	return pricing.Params{
		Name:          "1-4 pallets",
		TransportType: kernel.Pallet,
		Type:          pricing.DynamicM3Weight,
		PalletCount:   pricing.Between(1, 4),
		PriceEur:      decimal.NewFromInt(120),
		Priority:      5,
		IsActive:      true,
	}
}

func TestNewRule(t *testing.T) {
	t.Run("should create a valid pallet rule", func(t *testing.T) {
		id := kernel.NewUUID()

		rule, err := pricing.NewRule(id, palletParams())

		require.NoError(t, err)
		require.NoError(t, rule.Validate())
		assert.True(t, rule.ID().IsEqual(id))
		assert.Equal(t, kernel.Pallet, rule.TransportType())
		assert.True(t, rule.IsActive())
		assert.Equal(t, 5, rule.Priority())
	})

	t.Run("should reject inconsistent params", func(t *testing.T) {
		tests := []struct {
			name   string
			mutate func(p *pricing.Params)
			field  string
		}{
			{"unknown transport type", func(p *pricing.Params) { p.TransportType = kernel.UnknownTransportType }, "transportType"},
			{"unknown rule type", func(p *pricing.Params) { p.Type = pricing.UnknownRuleType }, "type"},
			{"negative price", func(p *pricing.Params) { p.PriceEur = decimal.NewFromInt(-1) }, "priceEur"},
			{"inverted range", func(p *pricing.Params) { p.PalletCount = pricing.Between(5, 1) }, "palletCount"},
			{"negative weight bound", func(p *pricing.Params) { p.WeightKg = pricing.AtLeast(-1.0) }, "weightKg"},
			{"pallet rule with volume bound", func(p *pricing.Params) { p.VolumeCbm = pricing.AtMost(1.0) }, "volumeCbm"},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				p := palletParams()
				tt.mutate(&p)

				rule, err := pricing.NewRule(kernel.NewUUID(), p)

				require.ErrorIs(t, err, errs.ErrValueIsInvalid)
				assert.Contains(t, err.Error(), tt.field)
				assert.Nil(t, rule)
			})
		}
	})

	t.Run("should reject package rule with pallet bounds", func(t *testing.T) {
		p := palletParams()
		p.TransportType = kernel.Package

		_, err := pricing.NewRule(kernel.NewUUID(), p)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "palletCount")
	})

	t.Run("should reject nil id", func(t *testing.T) {
		_, err := pricing.NewRule(kernel.UUID{}, palletParams())

		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})
}

func TestRule_Admits(t *testing.T) {
	t.Run("pallet rule with open upper bound", func(t *testing.T) {
		p := palletParams()
		p.PalletCount = pricing.AtLeast(1)
		rule, _ := pricing.NewRule(kernel.NewUUID(), p)

		assert.False(t, rule.Admits(pricing.Query{TransportType: kernel.Pallet, PalletCount: 0}))
		assert.True(t, rule.Admits(pricing.Query{TransportType: kernel.Pallet, PalletCount: 1}))
		assert.True(t, rule.Admits(pricing.Query{TransportType: kernel.Pallet, PalletCount: 33}))
	})

	t.Run("bounds are inclusive", func(t *testing.T) {
		rule, _ := pricing.NewRule(kernel.NewUUID(), pricing.Params{
			TransportType: kernel.Package,
			Type:          pricing.DynamicM3Weight,
			VolumeCbm:     pricing.AtMost(0.1),
			WeightKg:      pricing.Between(0.0, 20.0),
			PriceEur:      decimal.NewFromInt(35),
			IsActive:      true,
		})

		assert.True(t, rule.Admits(pricing.Query{TransportType: kernel.Package, VolumeCbm: 0.1, WeightKg: 20}))
		assert.False(t, rule.Admits(pricing.Query{TransportType: kernel.Package, VolumeCbm: 0.1000001, WeightKg: 20}))
		assert.False(t, rule.Admits(pricing.Query{TransportType: kernel.Package, VolumeCbm: 0.05, WeightKg: 20.5}))
	})
}

func TestRule_Price(t *testing.T) {
	t.Run("fixed per unit is linear in unit count", func(t *testing.T) {
		p := palletParams()
		p.Type = pricing.FixedPerUnit
		p.PriceEur = decimal.RequireFromString("40.50")
		rule, _ := pricing.NewRule(kernel.NewUUID(), p)

		one := rule.Price(pricing.Query{TransportType: kernel.Pallet, PalletCount: 1})
		for n := 1; n <= 10; n++ {
			got := rule.Price(pricing.Query{TransportType: kernel.Pallet, PalletCount: n})
			assert.True(t, one.Mul(decimal.NewFromInt(int64(n))).Equal(got), "n=%d", n)
		}
	})

	t.Run("fixed per unit is flat for package rules", func(t *testing.T) {
		rule, _ := pricing.NewRule(kernel.NewUUID(), pricing.Params{
			TransportType: kernel.Package,
			Type:          pricing.FixedPerUnit,
			PriceEur:      decimal.NewFromInt(7),
			IsActive:      true,
		})

		got := rule.Price(pricing.Query{TransportType: kernel.Package, PackageCount: 3, PalletCount: 9})

		assert.True(t, decimal.NewFromInt(7).Equal(got))
	})

	t.Run("dynamic rule is flat", func(t *testing.T) {
		rule, _ := pricing.NewRule(kernel.NewUUID(), palletParams())

		assert.True(t, decimal.NewFromInt(120).Equal(rule.Price(pricing.Query{TransportType: kernel.Pallet, PalletCount: 3})))
		assert.True(t, decimal.NewFromInt(120).Equal(rule.Price(pricing.Query{TransportType: kernel.Pallet, PalletCount: 4})))
	})
}

func TestRule_UpdateAndDeactivate(t *testing.T) {
	rule, _ := pricing.NewRule(kernel.NewUUID(), palletParams())

	p := palletParams()
	p.PriceEur = decimal.NewFromInt(130)
	require.NoError(t, rule.Update(p))
	assert.True(t, decimal.NewFromInt(130).Equal(rule.PriceEur()))

	p.PalletCount = pricing.Between(4, 1)
	require.Error(t, rule.Update(p))
	assert.True(t, decimal.NewFromInt(130).Equal(rule.PriceEur()), "failed update keeps previous params")

	rule.Deactivate()
	assert.False(t, rule.IsActive())
}

func TestRange_String(t *testing.T) {
	assert.Equal(t, "[1, 4]", pricing.Between(1, 4).String())
	assert.Equal(t, "[1, ∞)", pricing.AtLeast(1).String())
	assert.Equal(t, "(-∞, 0.1]", pricing.AtMost(0.1).String())
	assert.Equal(t, "(-∞, ∞)", pricing.Range[int]{}.String())
}
