package queries

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrListPricingRulesQueryIsNotConstructed = errors.New(
	"ListPricingRulesQuery must be created via NewListPricingRulesQuery constructor",
)

// ListPricingRulesQuery lists rules for back-office maintenance. A zero
// transport type lists both types.
type ListPricingRulesQuery struct {
	transportType   kernel.TransportType
	includeInactive bool

	guard guard.ConstructorGuard
}

func NewListPricingRulesQuery(transportType kernel.TransportType, includeInactive bool) (ListPricingRulesQuery, error) {
	if transportType != kernel.UnknownTransportType {
		if err := transportType.Validate(); err != nil {
			return ListPricingRulesQuery{}, err
		}
	}
	return ListPricingRulesQuery{
		transportType:   transportType,
		includeInactive: includeInactive,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

func (q ListPricingRulesQuery) Validate() error {
	return q.guard.Validate(ErrListPricingRulesQueryIsNotConstructed)
}

// PricingRuleView is a rule as shown to operators. Nil bounds are open.
type PricingRuleView struct {
	ID            kernel.UUID
	Name          string
	TransportType string
	RuleType      string
	PalletMin     *int
	PalletMax     *int
	VolumeMinCbm  *float64
	VolumeMaxCbm  *float64
	WeightMinKg   *float64
	WeightMaxKg   *float64
	PriceEur      decimal.Decimal
	Priority      int
	IsActive      bool
}
