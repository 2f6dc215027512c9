package services

import (
	"cmp"
	"slices"

	"fulfillment/internal/core/domain/model/pricing"
)

// TransportPriceMatcher selects the price for a shipment from the rule set.
//
// Only active rules of the requested transport type take part. They are
// evaluated by descending priority, rules of equal priority in the order they
// were given, and the first rule whose bounds admit the query wins. An
// unmatched query is a valid outcome: the shipment stays unpriced and goes to
// manual quotation.
//
//	quote, ok := matcher.Match(rules, pricing.Query{
//	    TransportType: kernel.Pallet,
//	    WeightKg:      450,
//	    PalletCount:   3,
//	})
type TransportPriceMatcher struct{}

func NewTransportPriceMatcher() TransportPriceMatcher {
	return TransportPriceMatcher{}
}

// Match returns the quote of the winning rule, or false when none admits q.
func (m TransportPriceMatcher) Match(rules []*pricing.Rule, q pricing.Query) (pricing.Quote, bool) {
	candidates := make([]*pricing.Rule, 0, len(rules))
	for _, r := range rules {
		if r.Validate() != nil || !r.IsActive() || r.TransportType() != q.TransportType {
			continue
		}
		candidates = append(candidates, r)
	}

	slices.SortStableFunc(candidates, func(a, b *pricing.Rule) int {
		return cmp.Compare(b.Priority(), a.Priority())
	})

	for _, r := range candidates {
		if r.Admits(q) {
			return pricing.Quote{RuleID: r.ID(), PriceEur: r.Price(q)}, true
		}
	}
	return pricing.Quote{}, false
}
