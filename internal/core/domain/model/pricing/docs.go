// Package pricing models transport pricing rules: priced bands over pallet
// position count or volume, plus weight, selected by priority.
//
// A Rule is edited and deactivated independently of the shipments it has
// priced; shipments keep the rule id only as a historical reference.
package pricing
