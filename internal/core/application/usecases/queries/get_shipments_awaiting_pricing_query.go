package queries

import (
	"errors"
	"fmt"

	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

const MaxAwaitingPricingLimit = 1000

var ErrGetShipmentsAwaitingPricingQueryIsNotConstructed = errors.New(
	"GetShipmentsAwaitingPricingQuery must be created via NewGetShipmentsAwaitingPricingQuery constructor",
)

// GetShipmentsAwaitingPricingQuery finds pending shipments without a price or
// client choice whose members are all packed. These are the shipments a
// missed consolidation left behind, plus those flagged for a manual quote
// that a newly added rule might now price.
type GetShipmentsAwaitingPricingQuery struct {
	limit int

	guard guard.ConstructorGuard
}

func NewGetShipmentsAwaitingPricingQuery(limit int) (GetShipmentsAwaitingPricingQuery, error) {
	if limit < 1 || limit > MaxAwaitingPricingLimit {
		return GetShipmentsAwaitingPricingQuery{}, errs.NewValueIsOutOfRangeErrorWithCause(
			"limit", limit, 1, MaxAwaitingPricingLimit, fmt.Errorf("got %d", limit))
	}
	return GetShipmentsAwaitingPricingQuery{limit: limit, guard: guard.NewConstructorGuard()}, nil
}

func (q GetShipmentsAwaitingPricingQuery) Validate() error {
	return q.guard.Validate(ErrGetShipmentsAwaitingPricingQueryIsNotConstructed)
}
