package queries_test

import (
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/warehouse"
)

func (suite *QueryHandlersTestSuite) TestGetClientWarehouseOrders_AggregatesLedger() {
	ctx := suite.T().Context()
	clientID := kernel.NewUUID()
	waiting := suite.storedOrder(clientID)
	packed := suite.storedOrder(clientID, parcel, warehouse.PalletUnit{Count: 2, TotalWeightKg: 600})
	suite.storedOrder(kernel.NewUUID(), parcel)

	query, err := queries.NewGetClientWarehouseOrdersQuery(clientID, false)
	suite.Require().NoError(err)

	got, err := queries.NewGetClientWarehouseOrdersQueryHandler(suite.database.DB).Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Require().Len(got, 2)

	byID := make(map[kernel.UUID]queries.WarehouseOrderView, len(got))
	for _, v := range got {
		byID[v.ID] = v
	}

	suite.Equal("TO_PACK", byID[waiting.ID()].Status)
	suite.Zero(byID[waiting.ID()].PackageCount)
	suite.Nil(byID[waiting.ID()].PackedAt)

	suite.Equal("READY_TO_SHIP", byID[packed.ID()].Status)
	suite.Equal(2, byID[packed.ID()].PackageCount)
	suite.InDelta(packed.TotalVolumeCbm(), byID[packed.ID()].VolumeCbm, 1e-9)
	suite.InDelta(610.0, byID[packed.ID()].WeightKg, 1e-9)
	suite.Equal(packed.TrackingNumber(), byID[packed.ID()].TrackingNumber)
	suite.NotNil(byID[packed.ID()].PackedAt)
}

func (suite *QueryHandlersTestSuite) TestGetClientWarehouseOrders_ReleasedOnRequest() {
	ctx := suite.T().Context()
	clientID := kernel.NewUUID()
	o := suite.storedOrder(clientID, parcel)
	suite.Require().NoError(o.Release())
	suite.Require().NoError(suite.orders.Update(ctx, o))

	handler := queries.NewGetClientWarehouseOrdersQueryHandler(suite.database.DB)

	current, err := queries.NewGetClientWarehouseOrdersQuery(clientID, false)
	suite.Require().NoError(err)
	got, err := handler.Handle(ctx, current)
	suite.Require().NoError(err)
	suite.Empty(got)

	history, err := queries.NewGetClientWarehouseOrdersQuery(clientID, true)
	suite.Require().NoError(err)
	got, err = handler.Handle(ctx, history)
	suite.Require().NoError(err)
	suite.Require().Len(got, 1)
	suite.Equal("RELEASED", got[0].Status)
}
