// Package warehouse models the physical consignment held for a client: the
// warehouse order aggregate and its package ledger.
//
// Lifecycle:
//
//	AtWarehouse ──┬──> ToPack ──┬──> ReadyToShip ──> Released
//	              └─────────────┘
//	           (packing accepted from both)
//
// AtWarehouse orders come from a delivery receipt, ToPack orders from a local
// collection or from being added to a shipment. Packing replaces the ledger
// with the packed shipping units in one step; it either fully succeeds or
// leaves the order untouched.
package warehouse
