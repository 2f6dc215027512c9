package commands_test

import (
	"errors"
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/pricing"
	"fulfillment/internal/core/domain/model/shipment"
	"fulfillment/internal/core/domain/model/warehouse"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type packFixture struct {
	repos          repos
	packUoW        *MockUoW
	consolidateUoW *MockUoW
	factory        *MockShipmentUoWFactory
	tasks          *MockTaskDispatcher
	handler        commands.PackOrderCommandHandler
}

func newPackFixture() packFixture {
	r := newRepos()
	f := packFixture{
		repos:          r,
		packUoW:        newMockUoW(r),
		consolidateUoW: newMockUoW(r),
		factory:        new(MockShipmentUoWFactory),
		tasks:          new(MockTaskDispatcher),
	}
	consolidate := commands.NewConsolidateShipmentCommandHandler(f.factory, r.rules, f.tasks, discardLogger())
	f.handler = commands.NewPackOrderCommandHandler(f.factory, consolidate, f.tasks, discardLogger())
	return f
}

func TestPackOrderCommandHandler_Handle_PricesSingleParcelShipment(t *testing.T) {
	// Arrange
	ctx := t.Context()
	clientID := kernel.NewUUID()
	order := waitingOrder(t, clientID)
	s := shipmentOf(t, clientID, order)
	rule := packageRule(t, 35)

	cmd, err := commands.NewPackOrderCommand(order.ID(), []warehouse.Unit{parcel}, "fragile")
	require.NoError(t, err)

	f := newPackFixture()
	r := f.repos

	mock.InOrder(
		f.factory.On("Create").Return(f.packUoW).Once(),
		f.factory.On("Create").Return(f.consolidateUoW).Once(),
	)
	mock.InOrder(
		f.packUoW.On("Begin", ctx).Return(nil).Once(),
		r.orders.On("GetForUpdate", ctx, order.ID()).Return(order, nil).Once(),
		r.orders.On("Update", ctx, order).Return(nil).Once(),
		f.packUoW.On("Commit", ctx).Return(nil).Once(),
		f.packUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mock.InOrder(
		f.consolidateUoW.On("Begin", ctx).Return(nil).Once(),
		r.shipments.On("FindActiveByWarehouseOrder", ctx, order.ID()).Return(s, nil).Once(),
		r.shipments.On("GetForUpdate", ctx, s.ID()).Return(s, nil).Once(),
		r.orders.On("GetMany", ctx, []kernel.UUID{order.ID()}).Return([]*warehouse.Order{order}, nil).Once(),
		r.rules.On("ListActive", ctx, kernel.Package).Return([]*pricing.Rule{rule}, nil).Once(),
		r.shipments.On("Update", ctx, s).Return(nil).Once(),
		f.consolidateUoW.On("Commit", ctx).Return(nil).Once(),
		f.consolidateUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	f.tasks.On("RecalculateCapacity", ctx, clientID).Return(nil).Once()
	f.tasks.On("Notify", ctx, notificationOf(ports.NotificationShipmentPriced)).Return(nil).Once()

	// Act
	result, err := f.handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, warehouse.ReadyToShip, result.Status)
	assert.InDelta(t, 0.063, result.TotalVolumeCbm, 1e-9)
	assert.InDelta(t, 10.0, result.TotalWeightKg, 1e-9)
	require.NotNil(t, result.Shipment)
	assert.Equal(t, shipment.AwaitingAcceptance, result.Shipment.Status)
	assert.Equal(t, "35.00", result.Shipment.PriceEur.StringFixed(2))
	assert.Equal(t, rule.ID(), *result.Shipment.PricingRuleID)
	assert.False(t, result.Shipment.NeedsManualQuote)

	f.factory.AssertExpectations(t)
	f.packUoW.AssertExpectations(t)
	f.consolidateUoW.AssertExpectations(t)
	r.orders.AssertExpectations(t)
	r.shipments.AssertExpectations(t)
	r.rules.AssertExpectations(t)
	f.tasks.AssertExpectations(t)
}

func TestPackOrderCommandHandler_Handle_UnmatchedShipmentNeedsManualQuote(t *testing.T) {
	// Arrange
	ctx := t.Context()
	clientID := kernel.NewUUID()
	order := waitingOrder(t, clientID)
	s := shipmentOf(t, clientID, order)

	cmd, err := commands.NewPackOrderCommand(order.ID(), []warehouse.Unit{parcel}, "")
	require.NoError(t, err)

	f := newPackFixture()
	r := f.repos

	mock.InOrder(
		f.factory.On("Create").Return(f.packUoW).Once(),
		f.factory.On("Create").Return(f.consolidateUoW).Once(),
	)
	f.packUoW.On("Begin", ctx).Return(nil).Once()
	f.packUoW.On("Commit", ctx).Return(nil).Once()
	f.packUoW.On("Rollback", ctx).Return(nil).Once()
	f.consolidateUoW.On("Begin", ctx).Return(nil).Once()
	f.consolidateUoW.On("Commit", ctx).Return(nil).Once()
	f.consolidateUoW.On("Rollback", ctx).Return(nil).Once()
	r.orders.On("GetForUpdate", ctx, order.ID()).Return(order, nil).Once()
	r.orders.On("Update", ctx, order).Return(nil).Once()
	r.shipments.On("FindActiveByWarehouseOrder", ctx, order.ID()).Return(s, nil).Once()
	r.shipments.On("GetForUpdate", ctx, s.ID()).Return(s, nil).Once()
	r.orders.On("GetMany", ctx, mock.Anything).Return([]*warehouse.Order{order}, nil).Once()
	r.rules.On("ListActive", ctx, kernel.Package).Return([]*pricing.Rule{}, nil).Once()
	r.shipments.On("Update", ctx, s).Return(nil).Once()
	f.tasks.On("RecalculateCapacity", ctx, clientID).Return(nil).Once()
	f.tasks.On("Notify", ctx, notificationOf(ports.NotificationManualQuoteNeeded)).Return(nil).Once()

	// Act
	result, err := f.handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, result.Shipment)
	assert.Equal(t, shipment.Pending, result.Shipment.Status)
	assert.Nil(t, result.Shipment.PriceEur)
	assert.True(t, result.Shipment.NeedsManualQuote)
	f.tasks.AssertExpectations(t)
}

func TestPackOrderCommandHandler_Handle_OrderWithoutShipment(t *testing.T) {
	// Arrange
	ctx := t.Context()
	clientID := kernel.NewUUID()
	order := waitingOrder(t, clientID)

	cmd, err := commands.NewPackOrderCommand(order.ID(), []warehouse.Unit{parcel}, "")
	require.NoError(t, err)

	f := newPackFixture()
	r := f.repos

	mock.InOrder(
		f.factory.On("Create").Return(f.packUoW).Once(),
		f.factory.On("Create").Return(f.consolidateUoW).Once(),
	)
	f.packUoW.On("Begin", ctx).Return(nil).Once()
	f.packUoW.On("Commit", ctx).Return(nil).Once()
	f.packUoW.On("Rollback", ctx).Return(nil).Once()
	f.consolidateUoW.On("Begin", ctx).Return(nil).Once()
	f.consolidateUoW.On("Rollback", ctx).Return(nil).Once()
	r.orders.On("GetForUpdate", ctx, order.ID()).Return(order, nil).Once()
	r.orders.On("Update", ctx, order).Return(nil).Once()
	r.shipments.On("FindActiveByWarehouseOrder", ctx, order.ID()).
		Return(nil, errs.NewObjectNotFoundError("warehouseOrderId", order.ID())).Once()
	f.tasks.On("RecalculateCapacity", ctx, clientID).Return(nil).Once()

	// Act
	result, err := f.handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, warehouse.ReadyToShip, result.Status)
	assert.Nil(t, result.Shipment)
	f.consolidateUoW.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestPackOrderCommandHandler_Handle_ConsolidationFailureKeepsPacking(t *testing.T) {
	// Arrange
	ctx := t.Context()
	clientID := kernel.NewUUID()
	order := waitingOrder(t, clientID)
	s := shipmentOf(t, clientID, order)

	cmd, err := commands.NewPackOrderCommand(order.ID(), []warehouse.Unit{parcel}, "")
	require.NoError(t, err)

	f := newPackFixture()
	r := f.repos

	mock.InOrder(
		f.factory.On("Create").Return(f.packUoW).Once(),
		f.factory.On("Create").Return(f.consolidateUoW).Once(),
	)
	f.packUoW.On("Begin", ctx).Return(nil).Once()
	f.packUoW.On("Commit", ctx).Return(nil).Once()
	f.packUoW.On("Rollback", ctx).Return(nil).Once()
	f.consolidateUoW.On("Begin", ctx).Return(nil).Once()
	f.consolidateUoW.On("Rollback", ctx).Return(nil).Once()
	r.orders.On("GetForUpdate", ctx, order.ID()).Return(order, nil).Once()
	r.orders.On("Update", ctx, order).Return(nil).Once()
	r.shipments.On("FindActiveByWarehouseOrder", ctx, order.ID()).Return(s, nil).Once()
	r.shipments.On("GetForUpdate", ctx, s.ID()).Return(nil, errors.New("lock timeout")).Once()
	f.tasks.On("RecalculateCapacity", ctx, clientID).Return(errors.New("queue unavailable")).Once()

	// Act
	result, err := f.handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, warehouse.ReadyToShip, order.Status())
	assert.Equal(t, warehouse.ReadyToShip, result.Status)
	assert.Nil(t, result.Shipment)
	assert.Equal(t, shipment.Pending, s.Status())
}

func TestPackOrderCommandHandler_Handle_InvalidUnitsWriteNothing(t *testing.T) {
	// Arrange
	ctx := t.Context()
	order := waitingOrder(t, kernel.NewUUID())

	cmd, err := commands.NewPackOrderCommand(order.ID(), []warehouse.Unit{
		parcel,
		warehouse.ParcelUnit{WidthCm: 10, LengthCm: 10, HeightCm: 10},
	}, "")
	require.NoError(t, err)

	f := newPackFixture()
	r := f.repos

	f.factory.On("Create").Return(f.packUoW).Once()
	mock.InOrder(
		f.packUoW.On("Begin", ctx).Return(nil).Once(),
		r.orders.On("GetForUpdate", ctx, order.ID()).Return(order, nil).Once(),
		f.packUoW.On("Rollback", ctx).Return(nil).Once(),
	)

	// Act
	_, err = f.handler.Handle(ctx, cmd)

	// Assert
	require.Error(t, err)
	assert.True(t, errs.IsValidation(err))
	assert.Equal(t, warehouse.ToPack, order.Status())
	assert.Empty(t, order.Packages())
	r.orders.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	f.tasks.AssertNotCalled(t, "RecalculateCapacity", mock.Anything, mock.Anything)
}

func TestPackOrderCommandHandler_Handle_InvalidCommand(t *testing.T) {
	f := newPackFixture()

	_, err := f.handler.Handle(t.Context(), commands.PackOrderCommand{})

	require.ErrorIs(t, err, commands.ErrPackOrderCommandIsNotConstructed)
	f.factory.AssertNotCalled(t, "Create")
}
