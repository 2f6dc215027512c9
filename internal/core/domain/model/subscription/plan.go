package subscription

import (
	"fmt"
	"strings"

	"fulfillment/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Plan is a subscription tier.
type Plan int

const (
	UnknownPlan Plan = iota
	Starter
	Business
	Enterprise
)

func getPlanStrings() map[Plan]string {
	return map[Plan]string{
		UnknownPlan: "UNKNOWN",
		Starter:     "STARTER",
		Business:    "BUSINESS",
		Enterprise:  "ENTERPRISE",
	}
}

// monthly base rates in EUR
func getBaseRates() map[Plan]decimal.Decimal {
	return map[Plan]decimal.Decimal{
		Starter:    decimal.NewFromInt(49),
		Business:   decimal.NewFromInt(129),
		Enterprise: decimal.NewFromInt(349),
	}
}

func ParsePlan(s string) (Plan, error) {
	for p, name := range getPlanStrings() {
		if p != UnknownPlan && strings.EqualFold(name, strings.TrimSpace(s)) {
			return p, nil
		}
	}
	return UnknownPlan, errs.NewValueIsInvalidErrorWithCause(
		"plan", fmt.Errorf("%q is not one of STARTER, BUSINESS, ENTERPRISE", s))
}

func (p Plan) Validate() error {
	if _, ok := getBaseRates()[p]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("plan", fmt.Errorf("%d is not a valid plan", p))
	}
	return nil
}

// BaseRateEur is the monthly price of the plan.
func (p Plan) BaseRateEur() decimal.Decimal {
	return getBaseRates()[p]
}

func (p Plan) String() string {
	if s, ok := getPlanStrings()[p]; ok {
		return s
	}
	return "UNKNOWN"
}
