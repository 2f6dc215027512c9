package queries

import (
	"errors"
	"strings"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/subscription"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrQuoteSubscriptionQueryIsNotConstructed = errors.New(
	"QuoteSubscriptionQuery must be created via NewQuoteSubscriptionQuery constructor",
)

// QuoteSubscriptionQuery prices a subscription period without billing it.
// The voucher is checked but not redeemed.
type QuoteSubscriptionQuery struct {
	clientID    kernel.UUID
	plan        subscription.Plan
	period      subscription.Period
	voucherCode string

	guard guard.ConstructorGuard
}

func NewQuoteSubscriptionQuery(
	clientID kernel.UUID,
	plan subscription.Plan,
	period subscription.Period,
	voucherCode string,
) (QuoteSubscriptionQuery, error) {
	var errClient error
	if err := clientID.Validate(); err != nil {
		errClient = errs.NewValueIsRequiredErrorWithCause("clientId", err)
	}
	if err := errors.Join(errClient, plan.Validate(), period.Validate()); err != nil {
		return QuoteSubscriptionQuery{}, err
	}

	return QuoteSubscriptionQuery{
		clientID:    clientID,
		plan:        plan,
		period:      period,
		voucherCode: strings.ToUpper(strings.TrimSpace(voucherCode)),
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (q QuoteSubscriptionQuery) Validate() error {
	return q.guard.Validate(ErrQuoteSubscriptionQueryIsNotConstructed)
}
