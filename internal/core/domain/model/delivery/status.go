package delivery

import (
	"fmt"
	"strings"

	"fulfillment/internal/pkg/errs"
)

type Status int

const (
	Unknown Status = iota
	Expected
	Received
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:  "UNKNOWN",
		Expected: "EXPECTED",
		Received: "RECEIVED",
	}
}

func (s Status) Validate() error {
	if s != Expected && s != Received {
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

// Receive moves Expected to Received; a delivery is received only once.
func (s Status) Receive() (Status, error) {
	if s != Expected {
		return 0, errs.NewStateConflictError("delivery", s.String(), "be received")
	}
	return Received, nil
}

// Condition is the state of the goods noted at receipt.
type Condition int

const (
	UnknownCondition Condition = iota
	Intact
	Damaged
	Incomplete
)

func getConditionStrings() map[Condition]string {
	return map[Condition]string{
		UnknownCondition: "UNKNOWN",
		Intact:           "INTACT",
		Damaged:          "DAMAGED",
		Incomplete:       "INCOMPLETE",
	}
}

func ParseCondition(s string) (Condition, error) {
	for c, name := range getConditionStrings() {
		if c != UnknownCondition && strings.EqualFold(name, s) {
			return c, nil
		}
	}
	return UnknownCondition, errs.NewValueIsInvalidErrorWithCause(
		"condition", fmt.Errorf("%q is not one of INTACT, DAMAGED, INCOMPLETE", s))
}

func (c Condition) Validate() error {
	if c < Intact || c > Incomplete {
		return errs.NewValueIsInvalidErrorWithCause("condition", fmt.Errorf("%d is not a valid condition", c))
	}
	return nil
}

func (c Condition) String() string {
	if str, ok := getConditionStrings()[c]; ok {
		return str
	}
	return "UNKNOWN"
}
