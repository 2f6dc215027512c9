package services

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/subscription"
	"fulfillment/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// SubscriptionInput carries everything a subscription price depends on.
// Voucher may be nil; SetupFeeEur is zero when no fee is pending.
type SubscriptionInput struct {
	Plan            subscription.Plan
	Period          subscription.Period
	DiscountPercent decimal.Decimal
	SetupFeeEur     decimal.Decimal
	Voucher         *subscription.Voucher
	Now             time.Time
}

// SubscriptionQuote breaks the amount down. Amounts are exact; round for
// display only.
type SubscriptionQuote struct {
	PeriodEur      decimal.Decimal
	DiscountEur    decimal.Decimal
	SetupFeeEur    decimal.Decimal
	VoucherEur     decimal.Decimal
	TotalEur       decimal.Decimal
	VoucherApplied bool
}

// SubscriptionPriceCalculator computes
//
//	baseRate × periodMultiplier × (1 − discount/100) + setupFee − voucher
//
// floored at zero. A missing, used or expired voucher takes nothing off and is
// not an error.
type SubscriptionPriceCalculator struct{}

func NewSubscriptionPriceCalculator() SubscriptionPriceCalculator {
	return SubscriptionPriceCalculator{}
}

func (c SubscriptionPriceCalculator) Calculate(in SubscriptionInput) (SubscriptionQuote, error) {
	var errDiscount, errFee error
	if in.DiscountPercent.IsNegative() || in.DiscountPercent.GreaterThan(hundred) {
		errDiscount = errs.NewValueIsOutOfRangeError("discountPercent", in.DiscountPercent, 0, 100)
	}
	if in.SetupFeeEur.IsNegative() {
		errFee = errs.NewValueIsOutOfRangeError("setupFeeEur", in.SetupFeeEur, 0, "unbounded")
	}
	if err := errors.Join(in.Plan.Validate(), in.Period.Validate(), errDiscount, errFee); err != nil {
		return SubscriptionQuote{}, err
	}

	periodEur := in.Plan.BaseRateEur().Mul(in.Period.Multiplier())
	discountEur := periodEur.Mul(in.DiscountPercent).Div(hundred)

	q := SubscriptionQuote{
		PeriodEur:   periodEur,
		DiscountEur: discountEur,
		SetupFeeEur: in.SetupFeeEur,
		VoucherEur:  decimal.Zero,
	}
	if in.Voucher != nil && in.Voucher.Validate() == nil && in.Voucher.IsValid(in.Now) {
		q.VoucherEur = in.Voucher.AmountEur()
		q.VoucherApplied = true
	}

	total := periodEur.Sub(discountEur).Add(in.SetupFeeEur).Sub(q.VoucherEur)
	if total.IsNegative() {
		total = decimal.Zero
	}
	q.TotalEur = total
	return q, nil
}
