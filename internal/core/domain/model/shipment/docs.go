// Package shipment models a client's request to ship one or more warehouse
// orders together, from consolidation and pricing through the client's
// transport choice to release.
//
// State transitions:
//
//	Pending ──(priced)──> AwaitingAcceptance ──ACCEPT──> AwaitingPayment ──(paid)──┐
//	   │                        │          └──ACCEPT on account──┐                 │
//	   │                        │                                v                 v
//	   ├──REQUEST_CUSTOM──> CustomQuoteRequested              ReadyForLoading ──> Released
//	   │                        │                                ^
//	   └────────────────────────┴───────OWN_TRANSPORT────────────┘
//
// A shipment stays Pending while any member order awaits packing or when no
// pricing rule matches; in the latter case it is flagged for a manual quote.
package shipment
