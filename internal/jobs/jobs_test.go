package jobs_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/jobs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

type finderMock struct{ mock.Mock }

func (m *finderMock) Handle(ctx context.Context, q queries.GetShipmentsAwaitingPricingQuery) ([]kernel.UUID, error) {
	args := m.Called(ctx, q)
	ids, _ := args.Get(0).([]kernel.UUID)
	return ids, args.Error(1)
}

type consolidatorMock struct{ mock.Mock }

func (m *consolidatorMock) Handle(
	ctx context.Context,
	cmd commands.ConsolidateShipmentCommand,
) (commands.ConsolidateShipmentResult, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(commands.ConsolidateShipmentResult), args.Error(1)
}

type listerMock struct{ mock.Mock }

func (m *listerMock) Handle(ctx context.Context, q queries.ListExpiringVouchersQuery) ([]queries.ExpiringVoucherView, error) {
	args := m.Called(ctx, q)
	views, _ := args.Get(0).([]queries.ExpiringVoucherView)
	return views, args.Error(1)
}

func forShipment(id kernel.UUID) any {
	return mock.MatchedBy(func(cmd commands.ConsolidateShipmentCommand) bool {
		return cmd.ShipmentID() != nil && cmd.ShipmentID().IsEqual(id)
	})
}

func TestPricingSweep_ConsolidatesEachShipment(t *testing.T) {
	priced, unpriced, broken := kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID()
	price := decimal.NewFromInt(90)

	finder := &finderMock{}
	finder.On("Handle", mock.Anything, mock.Anything).Return([]kernel.UUID{priced, unpriced, broken}, nil).Once()

	consolidator := &consolidatorMock{}
	consolidator.On("Handle", mock.Anything, forShipment(priced)).Return(commands.ConsolidateShipmentResult{
		ShipmentPricing: commands.ShipmentPricing{ShipmentID: priced, PriceEur: &price},
		Ready:           true,
	}, nil).Once()
	consolidator.On("Handle", mock.Anything, forShipment(unpriced)).Return(commands.ConsolidateShipmentResult{
		ShipmentPricing: commands.ShipmentPricing{ShipmentID: unpriced, NeedsManualQuote: true},
		Ready:           true,
	}, nil).Once()
	consolidator.On("Handle", mock.Anything, forShipment(broken)).
		Return(commands.ConsolidateShipmentResult{}, errors.New("deadlock detected")).Once()

	job := jobs.NewPricingSweepJob(finder, consolidator, "@every 5m", 50, discardLogger())

	report, err := job.Run(t.Context())

	require.NoError(t, err)
	assert.Equal(t, jobs.SweepReport{Checked: 3, Priced: 1, Failed: 1}, report)
	finder.AssertExpectations(t)
	consolidator.AssertExpectations(t)
}

func TestPricingSweep_LookupFailure(t *testing.T) {
	finder := &finderMock{}
	finder.On("Handle", mock.Anything, mock.Anything).Return(nil, errors.New("connection reset")).Once()
	consolidator := &consolidatorMock{}

	_, err := jobs.NewPricingSweepJob(finder, consolidator, "@every 5m", 50, discardLogger()).Run(t.Context())

	require.Error(t, err)
	consolidator.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
}

func TestPricingSweep_RejectsLimit(t *testing.T) {
	finder := &finderMock{}

	_, err := jobs.NewPricingSweepJob(finder, &consolidatorMock{}, "@every 5m", 0, discardLogger()).Run(t.Context())

	require.Error(t, err)
	finder.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
}

func TestVoucherExpiry_CountsVouchers(t *testing.T) {
	lister := &listerMock{}
	lister.On("Handle", mock.Anything, mock.Anything).Return([]queries.ExpiringVoucherView{
		{Code: "SPRING", AmountEur: decimal.NewFromInt(10), ExpiresAt: time.Now().Add(time.Hour)},
		{Code: "SUMMER", AmountEur: decimal.NewFromInt(20), ExpiresAt: time.Now().Add(2 * time.Hour)},
	}, nil).Once()

	n, err := jobs.NewVoucherExpiryJob(lister, "0 6 * * *", 24*time.Hour, discardLogger()).Run(t.Context())

	require.NoError(t, err)
	assert.Equal(t, 2, n)
	lister.AssertExpectations(t)
}

func TestVoucherExpiry_RejectsWindow(t *testing.T) {
	lister := &listerMock{}

	_, err := jobs.NewVoucherExpiryJob(lister, "0 6 * * *", 0, discardLogger()).Run(t.Context())

	require.Error(t, err)
	lister.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
}

func TestJobManager_StartAndStop(t *testing.T) {
	manager := jobs.NewJobManager(
		jobs.NewPricingSweepJob(&finderMock{}, &consolidatorMock{}, "@every 1h", 10, discardLogger()),
		jobs.NewVoucherExpiryJob(&listerMock{}, "0 6 * * *", time.Hour, discardLogger()),
	)

	require.NoError(t, manager.StartAll())
	manager.StopAll()
}

func TestJobManager_BadSpec(t *testing.T) {
	manager := jobs.NewJobManager(
		jobs.NewPricingSweepJob(&finderMock{}, &consolidatorMock{}, "@every 1h", 10, discardLogger()),
		jobs.NewVoucherExpiryJob(&listerMock{}, "every morning", time.Hour, discardLogger()),
	)

	err := manager.StartAll()

	assert.ErrorContains(t, err, "voucher expiry")
}
