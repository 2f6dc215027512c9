package kernel

import (
	"fmt"
	"strings"

	"fulfillment/internal/pkg/errs"
)

// TransportType classifies physical units and, by extension, shipments and
// pricing rules: pallets are billed by position, packages by volume.
type TransportType int

const (
	UnknownTransportType TransportType = iota
	Pallet
	Package
)

func getTransportTypeStrings() map[TransportType]string {
	return map[TransportType]string{
		UnknownTransportType: "UNKNOWN",
		Pallet:               "PALLET",
		Package:              "PACKAGE",
	}
}

// ParseTransportType accepts the wire names PALLET and PACKAGE (case-insensitive).
func ParseTransportType(s string) (TransportType, error) {
	for t, name := range getTransportTypeStrings() {
		if t != UnknownTransportType && strings.EqualFold(name, s) {
			return t, nil
		}
	}
	return UnknownTransportType, errs.NewValueIsInvalidErrorWithCause(
		"transportType", fmt.Errorf("%q is not one of PALLET, PACKAGE", s))
}

func (t TransportType) Validate() error {
	if t != Pallet && t != Package {
		return errs.NewValueIsInvalidErrorWithCause("transportType", fmt.Errorf("%d is not a valid transport type", t))
	}
	return nil
}

func (t TransportType) String() string {
	if s, ok := getTransportTypeStrings()[t]; ok {
		return s
	}
	return "UNKNOWN"
}
