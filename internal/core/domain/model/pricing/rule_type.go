package pricing

import (
	"fmt"
	"strings"

	"fulfillment/internal/pkg/errs"
)

// RuleType selects how a matched rule turns into a price.
type RuleType int

const (
	UnknownRuleType RuleType = iota
	// FixedPerUnit charges the rule price once per pallet position. On package
	// rules it is a flat price.
	FixedPerUnit
	// DynamicM3Weight charges the flat band price; the band encodes volume and weight.
	DynamicM3Weight
)

func getRuleTypeStrings() map[RuleType]string {
	return map[RuleType]string{
		UnknownRuleType: "UNKNOWN",
		FixedPerUnit:    "FIXED_PER_UNIT",
		DynamicM3Weight: "DYNAMIC_M3_WEIGHT",
	}
}

func ParseRuleType(s string) (RuleType, error) {
	for t, name := range getRuleTypeStrings() {
		if t != UnknownRuleType && strings.EqualFold(name, s) {
			return t, nil
		}
	}
	return UnknownRuleType, errs.NewValueIsInvalidErrorWithCause(
		"type", fmt.Errorf("%q is not one of FIXED_PER_UNIT, DYNAMIC_M3_WEIGHT", s))
}

func (t RuleType) Validate() error {
	if t != FixedPerUnit && t != DynamicM3Weight {
		return errs.NewValueIsInvalidErrorWithCause("type", fmt.Errorf("%d is not a valid rule type", t))
	}
	return nil
}

func (t RuleType) String() string {
	if s, ok := getRuleTypeStrings()[t]; ok {
		return s
	}
	return "UNKNOWN"
}
