package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/pricing"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrCreatePricingRuleCommandIsNotConstructed = errors.New(
		"CreatePricingRuleCommand must be created via NewCreatePricingRuleCommand constructor",
	)
	ErrUpdatePricingRuleCommandIsNotConstructed = errors.New(
		"UpdatePricingRuleCommand must be created via NewUpdatePricingRuleCommand constructor",
	)
	ErrDeletePricingRuleCommandIsNotConstructed = errors.New(
		"DeletePricingRuleCommand must be created via NewDeletePricingRuleCommand constructor",
	)
)

// CreatePricingRuleCommand carries the attributes of a new rule. Params are
// validated by the rule itself.
type CreatePricingRuleCommand struct {
	ruleID kernel.UUID
	params pricing.Params

	guard guard.ConstructorGuard
}

func NewCreatePricingRuleCommand(ruleID kernel.UUID, params pricing.Params) (CreatePricingRuleCommand, error) {
	if err := ruleID.Validate(); err != nil {
		return CreatePricingRuleCommand{}, errs.NewValueIsRequiredErrorWithCause("ruleId", err)
	}
	return CreatePricingRuleCommand{ruleID: ruleID, params: params, guard: guard.NewConstructorGuard()}, nil
}

func (c CreatePricingRuleCommand) Validate() error {
	return c.guard.Validate(ErrCreatePricingRuleCommandIsNotConstructed)
}

func (c CreatePricingRuleCommand) RuleID() kernel.UUID { return c.ruleID }

func (c CreatePricingRuleCommand) Params() pricing.Params { return c.params }

// UpdatePricingRuleCommand replaces all editable attributes of a rule.
// Deactivation is an update with IsActive false.
type UpdatePricingRuleCommand struct {
	ruleID kernel.UUID
	params pricing.Params

	guard guard.ConstructorGuard
}

func NewUpdatePricingRuleCommand(ruleID kernel.UUID, params pricing.Params) (UpdatePricingRuleCommand, error) {
	if err := ruleID.Validate(); err != nil {
		return UpdatePricingRuleCommand{}, errs.NewValueIsRequiredErrorWithCause("ruleId", err)
	}
	return UpdatePricingRuleCommand{ruleID: ruleID, params: params, guard: guard.NewConstructorGuard()}, nil
}

func (c UpdatePricingRuleCommand) Validate() error {
	return c.guard.Validate(ErrUpdatePricingRuleCommandIsNotConstructed)
}

func (c UpdatePricingRuleCommand) RuleID() kernel.UUID { return c.ruleID }

func (c UpdatePricingRuleCommand) Params() pricing.Params { return c.params }

type DeletePricingRuleCommand struct {
	ruleID kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeletePricingRuleCommand(ruleID kernel.UUID) (DeletePricingRuleCommand, error) {
	if err := ruleID.Validate(); err != nil {
		return DeletePricingRuleCommand{}, errs.NewValueIsRequiredErrorWithCause("ruleId", err)
	}
	return DeletePricingRuleCommand{ruleID: ruleID, guard: guard.NewConstructorGuard()}, nil
}

func (c DeletePricingRuleCommand) Validate() error {
	return c.guard.Validate(ErrDeletePricingRuleCommandIsNotConstructed)
}

func (c DeletePricingRuleCommand) RuleID() kernel.UUID { return c.ruleID }
