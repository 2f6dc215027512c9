package queries_test

import (
	"time"

	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/pricing"
	"fulfillment/internal/core/domain/model/shipment"
	"fulfillment/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

func (suite *QueryHandlersTestSuite) TestGetShipment_WithMembersAndTotals() {
	ctx := suite.T().Context()
	clientID := kernel.NewUUID()
	first := suite.storedOrder(clientID, parcel)
	second := suite.storedOrder(clientID, parcel, parcel)
	s := suite.storedShipment(clientID, first, second)

	_, err := s.ApplyQuote(kernel.Package, &pricing.Quote{RuleID: kernel.NewUUID(), PriceEur: decimal.NewFromInt(60)})
	suite.Require().NoError(err)
	suite.Require().NoError(suite.shipments.Update(ctx, s))

	query, err := queries.NewGetShipmentQuery(s.ID(), &clientID)
	suite.Require().NoError(err)

	got, err := queries.NewGetShipmentQueryHandler(suite.database.DB).Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Equal(s.ID(), got.ID)
	suite.Equal("AWAITING_ACCEPTANCE", got.Status)
	suite.Equal("PACKAGE", got.TransportType)
	suite.Require().NotNil(got.PriceEur)
	suite.True(decimal.NewFromInt(60).Equal(*got.PriceEur))
	suite.Nil(got.OwnTransport)
	suite.Require().Len(got.Members, 2)
	suite.Equal(first.ID(), got.Members[0].WarehouseOrderID)
	suite.Equal(second.ID(), got.Members[1].WarehouseOrderID)
	suite.Equal("READY_TO_SHIP", got.Members[0].Status)
	suite.InDelta(3*0.063, got.TotalVolumeCbm, 1e-9)
	suite.InDelta(30.0, got.TotalWeightKg, 1e-9)
}

func (suite *QueryHandlersTestSuite) TestGetShipment_OwnTransport() {
	ctx := suite.T().Context()
	clientID := kernel.NewUUID()
	s := suite.storedShipment(clientID, suite.storedOrder(clientID))

	suite.Require().NoError(s.ChooseOwnTransport(kernel.Package, &shipment.OwnTransportDetails{
		Carrier:        "DHL",
		TrackingNumber: "JJD000390007",
	}))
	suite.Require().True(s.MarkMembersPacked())
	suite.Require().NoError(suite.shipments.Update(ctx, s))

	query, err := queries.NewGetShipmentQuery(s.ID(), nil)
	suite.Require().NoError(err)

	got, err := queries.NewGetShipmentQueryHandler(suite.database.DB).Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Equal("OWN_TRANSPORT", got.Choice)
	suite.Equal("READY_FOR_LOADING", got.Status)
	suite.Require().NotNil(got.OwnTransport)
	suite.Equal("DHL", got.OwnTransport.Carrier)
	suite.WithinDuration(time.Now(), got.CreatedAt, time.Minute)
}

func (suite *QueryHandlersTestSuite) TestGetShipment_OtherClientIsNotFound() {
	ctx := suite.T().Context()
	owner := kernel.NewUUID()
	s := suite.storedShipment(owner, suite.storedOrder(owner))
	stranger := kernel.NewUUID()

	query, err := queries.NewGetShipmentQuery(s.ID(), &stranger)
	suite.Require().NoError(err)

	_, err = queries.NewGetShipmentQueryHandler(suite.database.DB).Handle(ctx, query)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *QueryHandlersTestSuite) TestGetShipment_Unknown() {
	query, err := queries.NewGetShipmentQuery(kernel.NewUUID(), nil)
	suite.Require().NoError(err)

	_, err = queries.NewGetShipmentQueryHandler(suite.database.DB).Handle(suite.T().Context(), query)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *QueryHandlersTestSuite) TestGetShipment_InvalidQuery() {
	_, err := queries.NewGetShipmentQueryHandler(suite.database.DB).Handle(suite.T().Context(), queries.GetShipmentQuery{})

	suite.Require().ErrorIs(err, queries.ErrGetShipmentQueryIsNotConstructed)
}
