package queries_test

import (
	"context"
	"testing"
	"time"

	"fulfillment/internal/adapters/out/postgres/pgtest"
	"fulfillment/internal/adapters/out/postgres/pricingrepo"
	"fulfillment/internal/adapters/out/postgres/shipmentrepo"
	"fulfillment/internal/adapters/out/postgres/subscriptionrepo"
	"fulfillment/internal/adapters/out/postgres/warehouserepo"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/pricing"
	"fulfillment/internal/core/domain/model/shipment"
	"fulfillment/internal/core/domain/model/warehouse"

	"github.com/stretchr/testify/suite"
)

// mockAggregateTracker discards tracked aggregates; the query tests only
// use repositories to seed rows.
type mockAggregateTracker struct{}

func (m *mockAggregateTracker) TrackAggregate(_ kernel.UUID, _ any) {}

// QueryHandlersTestSuite shares one database container across all read-side
// handlers.
type QueryHandlersTestSuite struct {
	suite.Suite
	database *pgtest.Database

	orders        *warehouserepo.GormOrderRepository
	shipments     *shipmentrepo.GormShipmentRepository
	rules         *pricingrepo.GormRuleRepository
	subscriptions *subscriptionrepo.GormSubscriptionRepository
}

func (suite *QueryHandlersTestSuite) SetupSuite() {
	database, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.database = database

	tracker := &mockAggregateTracker{}
	suite.orders = warehouserepo.NewGormOrderRepository(database.DB, tracker)
	suite.shipments = shipmentrepo.NewGormShipmentRepository(database.DB, tracker)
	suite.rules = pricingrepo.NewGormRuleRepository(database.DB, tracker)
	suite.subscriptions = subscriptionrepo.NewGormSubscriptionRepository(database.DB, tracker)
}

func (suite *QueryHandlersTestSuite) SetupTest() {
	suite.Require().NoError(suite.database.Truncate())
}

func (suite *QueryHandlersTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.database.Terminate(context.Background()))
}

func TestQueryHandlers(t *testing.T) {
	if testing.Short() {
		t.Skip("integration test")
	}
	suite.Run(t, new(QueryHandlersTestSuite))
}

var parcel = warehouse.ParcelUnit{WidthCm: 50, LengthCm: 40, HeightCm: 30, WeightKg: 10}

// storedOrder saves a collected order, packed with units when any are given.
func (suite *QueryHandlersTestSuite) storedOrder(clientID kernel.UUID, units ...warehouse.Unit) *warehouse.Order {
	o, err := warehouse.NewCollectedOrder(kernel.NewUUID(), clientID, nil)
	suite.Require().NoError(err)
	if len(units) > 0 {
		suite.Require().NoError(o.Pack(units, "", time.Now()))
	}
	suite.Require().NoError(suite.orders.Add(suite.T().Context(), o))
	return o
}

func (suite *QueryHandlersTestSuite) storedShipment(clientID kernel.UUID, members ...*warehouse.Order) *shipment.Shipment {
	ids := make([]kernel.UUID, 0, len(members))
	for _, o := range members {
		ids = append(ids, o.ID())
	}
	s, err := shipment.NewShipment(kernel.NewUUID(), clientID, ids)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.shipments.Add(suite.T().Context(), s))
	return s
}

func (suite *QueryHandlersTestSuite) storedRule(params pricing.Params) *pricing.Rule {
	r, err := pricing.NewRule(kernel.NewUUID(), params)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.rules.Add(suite.T().Context(), r))
	return r
}
