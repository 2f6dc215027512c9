package queries_test

import (
	"time"

	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/subscription"

	"github.com/shopspring/decimal"
)

func (suite *QueryHandlersTestSuite) storedVoucher(code string, expiresAt *time.Time) *subscription.Voucher {
	v, err := subscription.NewVoucher(kernel.NewUUID(), code, decimal.NewFromInt(15), expiresAt)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.subscriptions.AddVoucher(suite.T().Context(), v))
	return v
}

func (suite *QueryHandlersTestSuite) TestListExpiringVouchers_WindowOnly() {
	ctx := suite.T().Context()
	now := time.Now().UTC().Truncate(time.Second)
	at := func(d time.Duration) *time.Time {
		t := now.Add(d)
		return &t
	}

	suite.storedVoucher("LATER", at(72*time.Hour))
	suite.storedVoucher("SOON", at(24*time.Hour))
	suite.storedVoucher("GONE", at(-time.Hour))
	suite.storedVoucher("FAR", at(30*24*time.Hour))
	suite.storedVoucher("FOREVER", nil)

	used := suite.storedVoucher("USED", at(48*time.Hour))
	suite.Require().NoError(used.Redeem(kernel.NewUUID(), now))
	suite.Require().NoError(suite.subscriptions.UpdateVoucher(ctx, used))

	query, err := queries.NewListExpiringVouchersQuery(now, 7*24*time.Hour)
	suite.Require().NoError(err)

	got, err := queries.NewListExpiringVouchersQueryHandler(suite.database.DB).Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Require().Len(got, 2)
	suite.Equal("SOON", got[0].Code)
	suite.Equal("LATER", got[1].Code)
	suite.True(got[0].ExpiresAt.Equal(now.Add(24 * time.Hour)))
	suite.Equal("15.00", got[0].AmountEur.StringFixed(2))
}
