package kernel

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

const (
	// RackMin and RackMax bound the rack number inside a zone.
	RackMin = 1
	RackMax = 99
	// LevelMin and LevelMax bound the shelf level inside a rack.
	LevelMin = 1
	LevelMax = 9
)

// ErrLocationIsNotConstructed is returned when validating a zero-value Location.
var ErrLocationIsNotConstructed = errs.NewValueIsRequiredError(
	"location must be created via NewLocation or ParseLocation")

var binCodePattern = regexp.MustCompile(`^([A-Z]{1,3})-(\d{1,2})-(\d)$`)

// Location is a storage bin in the warehouse: zone letters, rack and shelf level.
// Its canonical text form is "ZONE-RR-L", e.g. "B-07-2".
type Location struct { //nolint:recvcheck //using for validation
	zone  string
	rack  int
	level int
	guard guard.ConstructorGuard
}

// NewLocation validates each part and returns the bin.
func NewLocation(zone string, rack, level int) (Location, error) {
	loc := Location{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(loc.setZone(zone), loc.setRack(rack), loc.setLevel(level)); err != nil {
		return Location{}, err
	}

	return loc, nil
}

// ParseLocation reads the canonical bin code. Lower-case zones are accepted.
func ParseLocation(code string) (Location, error) {
	m := binCodePattern.FindStringSubmatch(strings.ToUpper(strings.TrimSpace(code)))
	if m == nil {
		return Location{}, errs.NewValueIsInvalidErrorWithCause(
			"warehouseLocation",
			fmt.Errorf("%q does not match ZONE-RACK-LEVEL", code),
		)
	}

	rack, _ := strconv.Atoi(m[2])
	level, _ := strconv.Atoi(m[3])
	return NewLocation(m[1], rack, level)
}

func (l Location) Validate() error {
	return l.guard.Validate(ErrLocationIsNotConstructed)
}

func (l Location) Zone() string { return l.zone }
func (l Location) Rack() int    { return l.rack }
func (l Location) Level() int   { return l.level }

func (l Location) String() string {
	return fmt.Sprintf("%s-%02d-%d", l.zone, l.rack, l.level)
}

// IsEqual reports whether both locations are valid and point to the same bin.
func (l Location) IsEqual(other Location) (bool, error) {
	if err := errors.Join(l.Validate(), other.Validate()); err != nil {
		return false, err
	}

	return l == other, nil
}

func (l *Location) setZone(zone string) error {
	if zone == "" {
		return errs.NewValueIsRequiredError("zone")
	}
	for _, r := range zone {
		if r < 'A' || r > 'Z' {
			return errs.NewValueIsInvalidErrorWithCause("zone", fmt.Errorf("%q must be upper-case letters", zone))
		}
	}
	if len(zone) > 3 {
		return errs.NewValueIsOutOfRangeError("zone length", len(zone), 1, 3)
	}

	l.zone = zone
	return nil
}

func (l *Location) setRack(rack int) error {
	if rack < RackMin || rack > RackMax {
		return errs.NewValueIsOutOfRangeError("rack", rack, RackMin, RackMax)
	}

	l.rack = rack
	return nil
}

func (l *Location) setLevel(level int) error {
	if level < LevelMin || level > LevelMax {
		return errs.NewValueIsOutOfRangeError("level", level, LevelMin, LevelMax)
	}

	l.level = level
	return nil
}
