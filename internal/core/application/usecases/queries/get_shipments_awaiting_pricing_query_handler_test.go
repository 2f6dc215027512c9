package queries_test

import (
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/pricing"

	"github.com/shopspring/decimal"
)

func (suite *QueryHandlersTestSuite) TestGetShipmentsAwaitingPricing() {
	ctx := suite.T().Context()
	clientID := kernel.NewUUID()

	ready := suite.storedShipment(clientID, suite.storedOrder(clientID, parcel), suite.storedOrder(clientID, parcel))
	suite.storedShipment(clientID, suite.storedOrder(clientID, parcel), suite.storedOrder(clientID))

	priced := suite.storedShipment(clientID, suite.storedOrder(clientID, parcel))
	_, err := priced.ApplyQuote(kernel.Package, &pricing.Quote{RuleID: kernel.NewUUID(), PriceEur: decimal.NewFromInt(35)})
	suite.Require().NoError(err)
	suite.Require().NoError(suite.shipments.Update(ctx, priced))

	chosen := suite.storedShipment(clientID, suite.storedOrder(clientID, parcel))
	_, err = chosen.RequestCustomQuote()
	suite.Require().NoError(err)
	suite.Require().NoError(suite.shipments.Update(ctx, chosen))

	query, err := queries.NewGetShipmentsAwaitingPricingQuery(10)
	suite.Require().NoError(err)

	got, err := queries.NewGetShipmentsAwaitingPricingQueryHandler(suite.database.DB).Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Equal([]kernel.UUID{ready.ID()}, got)
}

func (suite *QueryHandlersTestSuite) TestGetShipmentsAwaitingPricing_RespectsLimit() {
	clientID := kernel.NewUUID()
	for range 3 {
		suite.storedShipment(clientID, suite.storedOrder(clientID, parcel))
	}

	query, err := queries.NewGetShipmentsAwaitingPricingQuery(2)
	suite.Require().NoError(err)

	got, err := queries.NewGetShipmentsAwaitingPricingQueryHandler(suite.database.DB).Handle(suite.T().Context(), query)

	suite.Require().NoError(err)
	suite.Len(got, 2)
}
