package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/pricing"
	"fulfillment/internal/core/domain/model/shipment"
	"fulfillment/internal/core/domain/model/warehouse"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"

	"github.com/shopspring/decimal"
)

// ShipmentPricing is the pricing state of a shipment as returned to callers.
type ShipmentPricing struct {
	ShipmentID       kernel.UUID
	Status           shipment.Status
	PriceEur         *decimal.Decimal
	PricingRuleID    *kernel.UUID
	NeedsManualQuote bool
}

func pricingOf(s *shipment.Shipment) ShipmentPricing {
	return ShipmentPricing{
		ShipmentID:       s.ID(),
		Status:           s.Status(),
		PriceEur:         s.PriceEur(),
		PricingRuleID:    s.PricingRuleID(),
		NeedsManualQuote: s.NeedsManualQuote(),
	}
}

// consolidate loads the rule set only when the shipment can actually be
// priced in this run.
func consolidate(
	ctx context.Context,
	consolidator services.ShipmentConsolidator,
	rules ports.PricingRuleSource,
	s *shipment.Shipment,
	members []*warehouse.Order,
) (services.ConsolidationResult, error) {
	var active []*pricing.Rule
	if s.AcceptsQuote() && services.MembersReady(members) {
		var err error
		active, err = rules.ListActive(ctx, services.AggregateMembers(members).TransportType)
		if err != nil {
			return services.ConsolidationResult{}, err
		}
	}
	return consolidator.Consolidate(s, members, active)
}

// pricingNotification is only produced for the run that changed the
// shipment, so repeated consolidations stay silent.
func pricingNotification(s *shipment.Shipment, result services.ConsolidationResult) (ports.Notification, bool) {
	if !result.Changed {
		return ports.Notification{}, false
	}
	if result.Loadable {
		return ports.Notification{
			Kind:     ports.NotificationShipmentReadyToLoad,
			ClientID: s.ClientID(),
			EntityID: s.ID(),
			Fields:   map[string]string{"choice": s.Choice().String()},
		}, true
	}
	n := ports.Notification{
		Kind:     ports.NotificationManualQuoteNeeded,
		ClientID: s.ClientID(),
		EntityID: s.ID(),
		Fields:   map[string]string{"transportType": result.Query.TransportType.String()},
	}
	if result.Quote != nil {
		n.Kind = ports.NotificationShipmentPriced
		n.Fields["priceEur"] = result.Quote.PriceEur.StringFixed(2)
	}
	return n, true
}
