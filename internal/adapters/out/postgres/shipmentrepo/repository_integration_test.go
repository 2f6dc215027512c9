package shipmentrepo_test

import (
	"context"
	"testing"
	"time"

	"fulfillment/internal/adapters/out/postgres/pgtest"
	"fulfillment/internal/adapters/out/postgres/shipmentrepo"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/pricing"
	"fulfillment/internal/core/domain/model/shipment"
	"fulfillment/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

type ShipmentRepositoryIntegrationTestSuite struct {
	suite.Suite
	database   *pgtest.Database
	repository *shipmentrepo.GormShipmentRepository
	tracker    *MockAggregateTracker
}

func (s *ShipmentRepositoryIntegrationTestSuite) SetupSuite() {
	database, err := pgtest.Start(context.Background())
	s.Require().NoError(err)
	s.database = database
}

func (s *ShipmentRepositoryIntegrationTestSuite) SetupTest() {
	s.Require().NoError(s.database.Truncate())

	s.tracker = &MockAggregateTracker{}
	s.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Return()
	s.repository = shipmentrepo.NewGormShipmentRepository(s.database.DB, s.tracker)
}

func (s *ShipmentRepositoryIntegrationTestSuite) TearDownSuite() {
	s.Require().NoError(s.database.Terminate(context.Background()))
}

func TestShipmentRepositoryIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("integration test")
	}
	suite.Run(t, new(ShipmentRepositoryIntegrationTestSuite))
}

func (s *ShipmentRepositoryIntegrationTestSuite) newShipment(orderIDs ...kernel.UUID) *shipment.Shipment {
	sh, err := shipment.NewShipment(kernel.NewUUID(), kernel.NewUUID(), orderIDs)
	s.Require().NoError(err)
	return sh
}

func (s *ShipmentRepositoryIntegrationTestSuite) TestAddAndGet_RoundTripsPricingAndMembers() {
	ctx := s.T().Context()
	first, second := kernel.NewUUID(), kernel.NewUUID()
	sh := s.newShipment(first, second)
	ruleID := kernel.NewUUID()
	changed, err := sh.ApplyQuote(kernel.Pallet, &pricing.Quote{RuleID: ruleID, PriceEur: decimal.RequireFromString("125.50")})
	s.Require().NoError(err)
	s.Require().True(changed)

	s.Require().NoError(s.repository.Add(ctx, sh))

	got, err := s.repository.Get(ctx, sh.ID())
	s.Require().NoError(err)
	s.Equal(shipment.AwaitingAcceptance, got.Status())
	s.Equal(kernel.Pallet, got.DominantType())
	s.Require().NotNil(got.PriceEur())
	s.True(decimal.RequireFromString("125.50").Equal(*got.PriceEur()))
	s.Require().NotNil(got.PricingRuleID())
	s.Equal(ruleID, *got.PricingRuleID())
	s.Equal([]kernel.UUID{first, second}, got.OrderIDs())
	s.Nil(got.OwnTransport())
	s.Nil(got.InvoiceID())
}

func (s *ShipmentRepositoryIntegrationTestSuite) TestAdd_MemberOfActiveShipment() {
	ctx := s.T().Context()
	shared := kernel.NewUUID()
	s.Require().NoError(s.repository.Add(ctx, s.newShipment(shared)))

	err := s.repository.Add(ctx, s.newShipment(kernel.NewUUID(), shared))

	s.Require().ErrorIs(err, errs.ErrValueIsInvalid)
}

func (s *ShipmentRepositoryIntegrationTestSuite) TestUpdate_ReleaseFreesMembers() {
	ctx := s.T().Context()
	orderID := kernel.NewUUID()
	sh := s.newShipment(orderID)
	_, err := sh.ApplyQuote(kernel.Package, &pricing.Quote{RuleID: kernel.NewUUID(), PriceEur: decimal.NewFromInt(35)})
	s.Require().NoError(err)
	_, err = sh.Accept(shipment.OnAccount)
	s.Require().NoError(err)
	s.Require().NoError(s.repository.Add(ctx, sh))

	s.Require().NoError(sh.Release(""))
	s.Require().NoError(s.repository.Update(ctx, sh))

	_, err = s.repository.FindActiveByWarehouseOrder(ctx, orderID)
	s.Require().ErrorIs(err, errs.ErrObjectNotFound)

	next := s.newShipment(orderID)
	s.Require().NoError(s.repository.Add(ctx, next))

	owner, err := s.repository.FindActiveByWarehouseOrder(ctx, orderID)
	s.Require().NoError(err)
	s.Equal(next.ID(), owner.ID())

	released, err := s.repository.Get(ctx, sh.ID())
	s.Require().NoError(err)
	s.Equal(shipment.Released, released.Status())
	s.Equal([]kernel.UUID{orderID}, released.OrderIDs())
}

func (s *ShipmentRepositoryIntegrationTestSuite) TestUpdate_StoresOwnTransport() {
	ctx := s.T().Context()
	sh := s.newShipment(kernel.NewUUID())
	s.Require().NoError(s.repository.Add(ctx, sh))

	loading := time.Date(2026, 11, 3, 0, 0, 0, 0, time.UTC)
	s.Require().NoError(sh.ChooseOwnTransport(kernel.Pallet, &shipment.OwnTransportDetails{
		VehicleRegistration: "B-AB 1234",
		PlannedLoadingDate:  &loading,
	}))
	s.Require().True(sh.MarkMembersPacked())
	s.Require().NoError(s.repository.Update(ctx, sh))

	got, err := s.repository.Get(ctx, sh.ID())
	s.Require().NoError(err)
	s.Equal(shipment.ReadyForLoading, got.Status())
	s.Equal(shipment.OwnTransport, got.Choice())
	s.Require().NotNil(got.OwnTransport())
	s.Equal("B-AB 1234", got.OwnTransport().VehicleRegistration)
	s.Require().NotNil(got.OwnTransport().PlannedLoadingDate)
	s.True(loading.Equal(got.OwnTransport().PlannedLoadingDate.UTC()))
}

func (s *ShipmentRepositoryIntegrationTestSuite) TestGetForUpdate_InsideTransaction() {
	ctx := s.T().Context()
	sh := s.newShipment(kernel.NewUUID())
	s.Require().NoError(s.repository.Add(ctx, sh))

	err := s.database.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		locked, err := shipmentrepo.NewGormShipmentRepository(tx, s.tracker).GetForUpdate(ctx, sh.ID())
		if err != nil {
			return err
		}
		s.Equal(sh.OrderIDs(), locked.OrderIDs())
		return nil
	})

	s.Require().NoError(err)
}

func (s *ShipmentRepositoryIntegrationTestSuite) TestGet_NotFound() {
	_, err := s.repository.Get(s.T().Context(), kernel.NewUUID())

	s.Require().ErrorIs(err, errs.ErrObjectNotFound)
}
