package subscription

import (
	"fmt"

	"fulfillment/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Period is the billing period in months.
type Period int

const (
	Monthly    Period = 1
	Quarterly  Period = 3
	HalfYearly Period = 6
)

// Promotional multipliers: 3 months at 10% off, 6 months at 15% off.
func getMultipliers() map[Period]decimal.Decimal {
	return map[Period]decimal.Decimal{
		Monthly:    decimal.NewFromInt(1),
		Quarterly:  decimal.RequireFromString("2.7"),
		HalfYearly: decimal.RequireFromString("5.1"),
	}
}

func NewPeriod(months int) (Period, error) {
	p := Period(months)
	if err := p.Validate(); err != nil {
		return 0, err
	}
	return p, nil
}

func (p Period) Validate() error {
	if _, ok := getMultipliers()[p]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("periodMonths", fmt.Errorf("%d is not one of 1, 3, 6", int(p)))
	}
	return nil
}

// Multiplier converts a monthly rate into the price of the whole period.
func (p Period) Multiplier() decimal.Decimal {
	return getMultipliers()[p]
}

func (p Period) Months() int {
	return int(p)
}
