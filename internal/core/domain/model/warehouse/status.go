package warehouse

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// Status is the lifecycle state of a warehouse order.
type Status int

const (
	// Unknown (0) catches uninitialized values.
	Unknown Status = iota

	// AtWarehouse is the state after a delivery receipt.
	AtWarehouse

	// ToPack means packing was requested.
	ToPack

	// ReadyToShip is set by a successful packing.
	ReadyToShip

	// Released means the goods left with their shipment. Final.
	Released
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:     "UNKNOWN",
		AtWarehouse: "AT_WAREHOUSE",
		ToPack:      "TO_PACK",
		ReadyToShip: "READY_TO_SHIP",
		Released:    "RELEASED",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		AtWarehouse: "AT_WAREHOUSE",
		ToPack:      "TO_PACK",
		ReadyToShip: "READY_TO_SHIP",
		Released:    "RELEASED",
	}
}

func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsAwaitingPacking reports whether packing is allowed from s.
func (s Status) IsAwaitingPacking() bool {
	return s == AtWarehouse || s == ToPack
}

// OccupiesCapacity reports whether goods in s are still stored at the warehouse.
func (s Status) OccupiesCapacity() bool {
	return s == AtWarehouse || s == ToPack || s == ReadyToShip
}

// RequestPacking moves AtWarehouse to ToPack. ToPack and ReadyToShip are
// returned unchanged so adding a packed order to a shipment is a no-op.
func (s Status) RequestPacking() (Status, error) {
	switch s {
	case AtWarehouse, ToPack:
		return ToPack, nil
	case ReadyToShip:
		return ReadyToShip, nil
	case Unknown, Released:
	}
	return 0, errs.NewStateConflictError("warehouse order", s.String(), "request packing")
}

// Pack moves an order awaiting packing to ReadyToShip.
func (s Status) Pack() (Status, error) {
	if !s.IsAwaitingPacking() {
		return 0, errs.NewStateConflictError("warehouse order", s.String(), "be packed")
	}
	return ReadyToShip, nil
}

// Release moves ReadyToShip to Released.
func (s Status) Release() (Status, error) {
	if s != ReadyToShip {
		return 0, errs.NewStateConflictError("warehouse order", s.String(), "be released")
	}
	return Released, nil
}
