package http_test

import (
	"context"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/pricing"
	"fulfillment/internal/core/domain/services"

	"github.com/stretchr/testify/mock"
)

type packOrderMock struct{ mock.Mock }

func (m *packOrderMock) Handle(ctx context.Context, cmd commands.PackOrderCommand) (commands.PackOrderResult, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(commands.PackOrderResult), args.Error(1)
}

type receiveDeliveryMock struct{ mock.Mock }

func (m *receiveDeliveryMock) Handle(
	ctx context.Context,
	cmd commands.ReceiveDeliveryCommand,
) (commands.ReceiveDeliveryResult, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(commands.ReceiveDeliveryResult), args.Error(1)
}

type chooseTransportMock struct{ mock.Mock }

func (m *chooseTransportMock) Handle(
	ctx context.Context,
	cmd commands.ChooseTransportCommand,
) (commands.ChooseTransportResult, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(commands.ChooseTransportResult), args.Error(1)
}

type getShipmentMock struct{ mock.Mock }

func (m *getShipmentMock) Handle(
	ctx context.Context,
	query queries.GetShipmentQuery,
) (queries.GetShipmentQueryResponse, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.GetShipmentQueryResponse), args.Error(1)
}

type pricingRulesMock struct{ mock.Mock }

func (m *pricingRulesMock) Create(ctx context.Context, cmd commands.CreatePricingRuleCommand) (*pricing.Rule, error) {
	args := m.Called(ctx, cmd)
	rule, _ := args.Get(0).(*pricing.Rule)
	return rule, args.Error(1)
}

func (m *pricingRulesMock) Update(ctx context.Context, cmd commands.UpdatePricingRuleCommand) (*pricing.Rule, error) {
	args := m.Called(ctx, cmd)
	rule, _ := args.Get(0).(*pricing.Rule)
	return rule, args.Error(1)
}

func (m *pricingRulesMock) Delete(ctx context.Context, cmd commands.DeletePricingRuleCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type quoteSubscriptionMock struct{ mock.Mock }

func (m *quoteSubscriptionMock) Handle(
	ctx context.Context,
	query queries.QuoteSubscriptionQuery,
) (services.SubscriptionQuote, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(services.SubscriptionQuote), args.Error(1)
}
