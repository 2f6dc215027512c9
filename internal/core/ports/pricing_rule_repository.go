package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/pricing"
)

type PricingRuleRepository interface {
	Add(ctx context.Context, rule *pricing.Rule) error
	Update(ctx context.Context, rule *pricing.Rule) error
	Get(ctx context.Context, id kernel.UUID) (*pricing.Rule, error)
	Delete(ctx context.Context, id kernel.UUID) error
	PricingRuleSource
}

// PricingRuleSource yields the active rules of one transport type in stable
// storage order, which the matcher relies on to break priority ties.
type PricingRuleSource interface {
	ListActive(ctx context.Context, transportType kernel.TransportType) ([]*pricing.Rule, error)
}

// PricingRuleCache drops cached rule sets after a rule changed.
type PricingRuleCache interface {
	Invalidate(ctx context.Context) error
}
