// Package services holds the stateless domain services of the fulfillment
// engine: logic that spans several aggregates or needs no aggregate at all.
//
//   - TransportPriceMatcher picks the rule that prices a shipment.
//   - ShipmentConsolidator aggregates the members of a shipment and prices it
//     once every member is packed.
//   - TransportChoiceResolver applies the client's reaction to a quote and
//     reports which side effects the caller has to run.
//   - SubscriptionPriceCalculator prices recurring plan invoices.
//
// None of them touch storage; command handlers load the aggregates, call the
// service and persist the result in one unit of work.
package services
