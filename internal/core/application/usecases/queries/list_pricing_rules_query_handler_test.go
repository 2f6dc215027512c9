package queries_test

import (
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/pricing"

	"github.com/shopspring/decimal"
)

func palletRule(name string, priority int, active bool) pricing.Params {
	return pricing.Params{
		Name:          name,
		TransportType: kernel.Pallet,
		Type:          pricing.FixedPerUnit,
		PalletCount:   pricing.AtLeast(1),
		PriceEur:      decimal.NewFromInt(45),
		Priority:      priority,
		IsActive:      active,
	}
}

func (suite *QueryHandlersTestSuite) TestListPricingRules_OrderedByPriority() {
	low := suite.storedRule(palletRule("standard", 0, true))
	high := suite.storedRule(palletRule("promo", 5, true))
	suite.storedRule(palletRule("retired", 9, false))
	suite.storedRule(pricing.Params{
		Name:          "parcels",
		TransportType: kernel.Package,
		Type:          pricing.DynamicM3Weight,
		VolumeCbm:     pricing.AtMost(0.1),
		PriceEur:      decimal.NewFromInt(35),
		IsActive:      true,
	})

	query, err := queries.NewListPricingRulesQuery(kernel.Pallet, false)
	suite.Require().NoError(err)

	got, err := queries.NewListPricingRulesQueryHandler(suite.database.DB).Handle(suite.T().Context(), query)

	suite.Require().NoError(err)
	suite.Require().Len(got, 2)
	suite.Equal(high.ID(), got[0].ID)
	suite.Equal(low.ID(), got[1].ID)
	suite.Equal("PALLET", got[0].TransportType)
	suite.Equal("FIXED_PER_UNIT", got[0].RuleType)
	suite.Require().NotNil(got[0].PalletMin)
	suite.Equal(1, *got[0].PalletMin)
	suite.Nil(got[0].PalletMax)
}

func (suite *QueryHandlersTestSuite) TestListPricingRules_AllTypesWithInactive() {
	suite.storedRule(palletRule("standard", 0, true))
	suite.storedRule(palletRule("retired", 0, false))

	query, err := queries.NewListPricingRulesQuery(kernel.UnknownTransportType, true)
	suite.Require().NoError(err)

	got, err := queries.NewListPricingRulesQueryHandler(suite.database.DB).Handle(suite.T().Context(), query)

	suite.Require().NoError(err)
	suite.Len(got, 2)
}
