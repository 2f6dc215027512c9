package commands

import (
	"context"
	"log/slog"

	"fulfillment/internal/core/domain/model/pricing"
	"fulfillment/internal/core/ports"
)

// PricingRuleCommandHandler maintains the rule table. Shipments keep the
// price and rule id they were quoted with, so edits only affect future
// consolidations. The rule cache is dropped after every committed change.
type PricingRuleCommandHandler struct {
	uowFactory PricingRuleUoWFactory
	cache      ports.PricingRuleCache
	logger     *slog.Logger
}

func NewPricingRuleCommandHandler(
	uowFactory PricingRuleUoWFactory,
	cache ports.PricingRuleCache,
	logger *slog.Logger,
) PricingRuleCommandHandler {
	return PricingRuleCommandHandler{
		uowFactory: uowFactory,
		cache:      cache,
		logger:     logger.With("component", "pricing_rules"),
	}
}

func (h PricingRuleCommandHandler) Create(ctx context.Context, cmd CreatePricingRuleCommand) (*pricing.Rule, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	rule, err := pricing.NewRule(cmd.RuleID(), cmd.Params())
	if err != nil {
		return nil, err
	}

	err = h.inTx(ctx, func(repo ports.PricingRuleRepository) error {
		return repo.Add(ctx, rule)
	})
	if err != nil {
		return nil, err
	}
	return rule, nil
}

func (h PricingRuleCommandHandler) Update(ctx context.Context, cmd UpdatePricingRuleCommand) (*pricing.Rule, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	var rule *pricing.Rule
	err := h.inTx(ctx, func(repo ports.PricingRuleRepository) error {
		var err error
		if rule, err = repo.Get(ctx, cmd.RuleID()); err != nil {
			return err
		}
		if err = rule.Update(cmd.Params()); err != nil {
			return err
		}
		return repo.Update(ctx, rule)
	})
	if err != nil {
		return nil, err
	}
	return rule, nil
}

func (h PricingRuleCommandHandler) Delete(ctx context.Context, cmd DeletePricingRuleCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.inTx(ctx, func(repo ports.PricingRuleRepository) error {
		return repo.Delete(ctx, cmd.RuleID())
	})
}

func (h PricingRuleCommandHandler) inTx(ctx context.Context, fn func(repo ports.PricingRuleRepository) error) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := fn(uow.PricingRuleRepository()); err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	bestEffort(ctx, h.logger, h.cache.Invalidate(ctx), "pricing rule cache not invalidated")
	return nil
}
