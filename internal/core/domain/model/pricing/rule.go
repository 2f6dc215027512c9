package pricing

import (
	"errors"
	"fmt"
	"strings"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var ErrRuleIsNotConstructed = errors.New("Rule must be created via NewRule or RestoreRule")

// Params carries the editable attributes of a rule.
type Params struct {
	Name          string
	TransportType kernel.TransportType
	Type          RuleType
	PalletCount   Range[int]
	VolumeCbm     Range[float64]
	WeightKg      Range[float64]
	PriceEur      decimal.Decimal
	Priority      int
	IsActive      bool
}

// Rule is a priced band. Pallet rules bound the pallet position count,
// package rules bound the volume; both may bound the weight.
type Rule struct {
	id     kernel.UUID
	params Params

	isConstructed bool
}

// NewRule validates params and creates a rule.
func NewRule(id kernel.UUID, params Params) (*Rule, error) {
	rule := &Rule{isConstructed: true}

	if err := errors.Join(id.Validate(), validateParams(params)); err != nil {
		return nil, err
	}

	rule.id = id
	rule.params = params
	return rule, nil
}

// RestoreRule rebuilds a persisted rule.
func RestoreRule(id kernel.UUID, params Params) (*Rule, error) {
	return NewRule(id, params)
}

func (r *Rule) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRuleIsNotConstructed
	}
	return nil
}

// Update replaces every editable attribute. Already priced shipments are not
// affected: they reference the rule by id only.
func (r *Rule) Update(params Params) error {
	if err := validateParams(params); err != nil {
		return err
	}
	r.params = params
	return nil
}

func (r *Rule) Deactivate() {
	r.params.IsActive = false
}

func (r *Rule) ID() kernel.UUID                     { return r.id }
func (r *Rule) Name() string                        { return r.params.Name }
func (r *Rule) TransportType() kernel.TransportType { return r.params.TransportType }
func (r *Rule) Type() RuleType                      { return r.params.Type }
func (r *Rule) PalletCount() Range[int]             { return r.params.PalletCount }
func (r *Rule) VolumeCbm() Range[float64]           { return r.params.VolumeCbm }
func (r *Rule) WeightKg() Range[float64]            { return r.params.WeightKg }
func (r *Rule) PriceEur() decimal.Decimal           { return r.params.PriceEur }
func (r *Rule) Priority() int                       { return r.params.Priority }
func (r *Rule) IsActive() bool                      { return r.params.IsActive }
func (r *Rule) Params() Params                      { return r.params }

// Admits reports whether the rule's bounds accept the query. It does not look
// at the active flag or the transport type; the matcher filters those first.
func (r *Rule) Admits(q Query) bool {
	if !r.params.WeightKg.Admits(q.WeightKg) {
		return false
	}

	if r.params.TransportType == kernel.Pallet {
		return r.params.PalletCount.Admits(q.PalletCount)
	}
	return r.params.VolumeCbm.Admits(q.VolumeCbm)
}

// Price computes the amount the rule charges for q. Only pallet rules are
// charged per unit, by pallet position; every other rule is a flat band price.
func (r *Rule) Price(q Query) decimal.Decimal {
	if r.params.Type == FixedPerUnit && r.params.TransportType == kernel.Pallet {
		return r.params.PriceEur.Mul(decimal.NewFromInt(int64(q.PalletCount)))
	}
	return r.params.PriceEur
}

func (r *Rule) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s p=%d", r.params.TransportType, r.params.Type, r.params.Priority)
	if r.params.TransportType == kernel.Pallet {
		fmt.Fprintf(&b, " pallets=%s", r.params.PalletCount)
	} else {
		fmt.Fprintf(&b, " cbm=%s", r.params.VolumeCbm)
	}
	fmt.Fprintf(&b, " kg=%s eur=%s", r.params.WeightKg, r.params.PriceEur.StringFixed(2))
	return b.String()
}

func validateParams(p Params) error {
	var errList []error

	if err := p.TransportType.Validate(); err != nil {
		errList = append(errList, err)
	}
	if err := p.Type.Validate(); err != nil {
		errList = append(errList, err)
	}
	if p.PriceEur.IsNegative() {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause(
			"priceEur", fmt.Errorf("%s is negative", p.PriceEur)))
	}

	errList = append(errList,
		p.PalletCount.validate("palletCount"),
		p.VolumeCbm.validate("volumeCbm"),
		p.WeightKg.validate("weightKg"),
	)

	switch p.TransportType {
	case kernel.Pallet:
		if !p.VolumeCbm.IsUnbounded() {
			errList = append(errList, errs.NewValueIsInvalidErrorWithCause(
				"volumeCbm", errors.New("pallet rules are bounded by pallet count, not volume")))
		}
	case kernel.Package:
		if !p.PalletCount.IsUnbounded() {
			errList = append(errList, errs.NewValueIsInvalidErrorWithCause(
				"palletCount", errors.New("package rules are bounded by volume, not pallet count")))
		}
	case kernel.UnknownTransportType:
	}

	return errors.Join(errList...)
}
