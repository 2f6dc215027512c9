package queries_test

import (
	"time"

	"fulfillment/internal/adapters/out/postgres/clientrepo"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/subscription"

	"github.com/shopspring/decimal"
)

func (suite *QueryHandlersTestSuite) TestQuoteSubscription_AllInputs() {
	ctx := suite.T().Context()
	clientID := kernel.NewUUID()
	suite.Require().NoError(suite.database.DB.Create(&clientrepo.ClientDTO{
		ID:              clientID.Bytes(),
		DiscountPercent: decimal.NewFromInt(10),
	}).Error)

	fee, err := subscription.NewSetupFee(kernel.NewUUID(), clientID, decimal.NewFromInt(50))
	suite.Require().NoError(err)
	suite.Require().NoError(suite.subscriptions.AddSetupFee(ctx, fee))

	voucher, err := subscription.NewVoucher(kernel.NewUUID(), "WELCOME20", decimal.NewFromInt(20), nil)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.subscriptions.AddVoucher(ctx, voucher))

	query, err := queries.NewQuoteSubscriptionQuery(clientID, subscription.Business, subscription.Quarterly, "welcome20")
	suite.Require().NoError(err)

	got, err := queries.NewQuoteSubscriptionQueryHandler(suite.database.DB).Handle(ctx, query)

	suite.Require().NoError(err)
	suite.True(got.VoucherApplied)
	suite.Equal("343.47", got.TotalEur.StringFixed(2))

	stored, err := suite.subscriptions.GetVoucherByCode(ctx, "WELCOME20")
	suite.Require().NoError(err)
	suite.Nil(stored.UsedByClientID(), "quoting does not redeem")
}

func (suite *QueryHandlersTestSuite) TestQuoteSubscription_UnknownClientAndVoucher() {
	query, err := queries.NewQuoteSubscriptionQuery(kernel.NewUUID(), subscription.Starter, subscription.Monthly, "NOPE")
	suite.Require().NoError(err)

	got, err := queries.NewQuoteSubscriptionQueryHandler(suite.database.DB).Handle(suite.T().Context(), query)

	suite.Require().NoError(err)
	suite.False(got.VoucherApplied)
	suite.Equal("49.00", got.TotalEur.StringFixed(2))
}

func (suite *QueryHandlersTestSuite) TestQuoteSubscription_ExpiredVoucher() {
	ctx := suite.T().Context()
	expired := time.Now().Add(-time.Hour)
	voucher, err := subscription.NewVoucher(kernel.NewUUID(), "OLD10", decimal.NewFromInt(10), &expired)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.subscriptions.AddVoucher(ctx, voucher))

	query, err := queries.NewQuoteSubscriptionQuery(kernel.NewUUID(), subscription.Starter, subscription.HalfYearly, "OLD10")
	suite.Require().NoError(err)

	got, err := queries.NewQuoteSubscriptionQueryHandler(suite.database.DB).Handle(ctx, query)

	suite.Require().NoError(err)
	suite.False(got.VoucherApplied)
	suite.Equal("249.90", got.TotalEur.StringFixed(2))
}
