package services

import (
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/pricing"
	"fulfillment/internal/core/domain/model/shipment"
	"fulfillment/internal/core/domain/model/warehouse"
	"fulfillment/internal/pkg/errs"
)

// ConsolidationResult describes what a consolidation run observed and did.
type ConsolidationResult struct {
	// Ready is false while some member is still waiting to be packed.
	Ready bool
	// Query is the aggregate of all members; set when Ready.
	Query pricing.Query
	// Quote is set when a rule priced the shipment in this run.
	Quote *pricing.Quote
	// Changed reports whether the shipment must be saved.
	Changed bool
	// Loadable is set when this run moved an own-transport shipment to loading.
	Loadable bool
}

// NeedsManualQuote reports a ready shipment no rule could price.
func (r ConsolidationResult) NeedsManualQuote() bool {
	return r.Ready && r.Quote == nil
}

// ShipmentConsolidator prices a shipment once all of its warehouse orders are
// packed, or hands an own-transport shipment over to loading. Running it
// again over the same state changes nothing, so every packing event may
// trigger it.
type ShipmentConsolidator struct {
	matcher TransportPriceMatcher
}

func NewShipmentConsolidator(matcher TransportPriceMatcher) ShipmentConsolidator {
	return ShipmentConsolidator{matcher: matcher}
}

// Consolidate requires members to be exactly the shipment's warehouse orders.
// Rules are only consulted when the shipment can still take a quote.
func (c ShipmentConsolidator) Consolidate(
	s *shipment.Shipment,
	members []*warehouse.Order,
	rules []*pricing.Rule,
) (ConsolidationResult, error) {
	if err := s.Validate(); err != nil {
		return ConsolidationResult{}, err
	}
	if err := checkMembers(s, members); err != nil {
		return ConsolidationResult{}, err
	}

	if !MembersReady(members) {
		return ConsolidationResult{}, nil
	}

	q := AggregateMembers(members)
	result := ConsolidationResult{Ready: true, Query: q}
	if s.MarkMembersPacked() {
		result.Changed = true
		result.Loadable = true
		return result, nil
	}
	if !s.AcceptsQuote() {
		return result, nil
	}

	var quote *pricing.Quote
	if matched, ok := c.matcher.Match(rules, q); ok {
		quote = &matched
	}

	changed, err := s.ApplyQuote(q.TransportType, quote)
	if err != nil {
		return ConsolidationResult{}, err
	}
	result.Quote = quote
	result.Changed = changed
	return result, nil
}

// MembersReady reports whether every member is packed.
func MembersReady(members []*warehouse.Order) bool {
	for _, o := range members {
		if o.Status() != warehouse.ReadyToShip {
			return false
		}
	}
	return true
}

// AggregateMembers sums the packages of all members into a pricing query.
// Any pallet makes the whole shipment a pallet shipment.
func AggregateMembers(members []*warehouse.Order) pricing.Query {
	q := pricing.Query{TransportType: kernel.Package}
	for _, o := range members {
		q.WeightKg += o.TotalWeightKg()
		q.VolumeCbm += o.TotalVolumeCbm()
		q.PalletCount += o.PalletPositions()
		q.PackageCount += o.ParcelCount()
		if o.HasPallets() {
			q.TransportType = kernel.Pallet
		}
	}
	return q
}

func checkMembers(s *shipment.Shipment, members []*warehouse.Order) error {
	byID := make(map[kernel.UUID]*warehouse.Order, len(members))
	for _, o := range members {
		if err := o.Validate(); err != nil {
			return err
		}
		byID[o.ID()] = o
	}
	for _, id := range s.OrderIDs() {
		if _, ok := byID[id]; !ok {
			return errs.NewObjectNotFoundError("warehouseOrderId", id)
		}
	}
	return nil
}
