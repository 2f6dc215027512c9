// Package pricingcache keeps the active pricing rules of each transport type
// in Redis in front of the rule table. Consolidation reads rules on every
// packing event, while the table changes only through rule maintenance,
// which drops the cached sets after each commit. A version counter bumped
// by every invalidation keeps a fill that loaded rules before the drop from
// writing them back after it.
package pricingcache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/pricing"
	"fulfillment/internal/core/ports"

	"github.com/redis/go-redis/v9"
)

const (
	keyPrefix  = "fulfillment:pricing_rules:v1:"
	versionKey = keyPrefix + "version"
)

var _ ports.PricingRuleSource = (*Cache)(nil)
var _ ports.PricingRuleCache = (*Cache)(nil)

// Cache is a read-through PricingRuleSource. Redis failures are logged and
// the call falls through to the wrapped source.
type Cache struct {
	client *redis.Client
	source ports.PricingRuleSource
	ttl    time.Duration
	logger *slog.Logger
}

func New(client *redis.Client, source ports.PricingRuleSource, ttl time.Duration, logger *slog.Logger) *Cache {
	return &Cache{
		client: client,
		source: source,
		ttl:    ttl,
		logger: logger.With("component", "pricing_cache"),
	}
}

func Key(transportType kernel.TransportType) string {
	return keyPrefix + transportType.String()
}

func (c *Cache) ListActive(ctx context.Context, transportType kernel.TransportType) ([]*pricing.Rule, error) {
	key := Key(transportType)

	rules, err := c.read(ctx, key)
	switch {
	case err == nil:
		return rules, nil
	case errors.Is(err, redis.Nil):
	default:
		c.logger.WarnContext(ctx, "pricing rule cache read failed", "key", key, "error", err)
	}

	version, err := c.version(ctx)
	if err != nil {
		c.logger.WarnContext(ctx, "pricing rule cache version read failed", "error", err)
		return c.source.ListActive(ctx, transportType)
	}

	rules, err = c.source.ListActive(ctx, transportType)
	if err != nil {
		return nil, err
	}

	if err = c.write(ctx, key, version, rules); err != nil {
		c.logger.WarnContext(ctx, "pricing rule cache write failed", "key", key, "error", err)
	}
	return rules, nil
}

// Invalidate drops the cached rule sets of every transport type and bumps
// the version so fills started before the call are discarded.
func (c *Cache) Invalidate(ctx context.Context) error {
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, versionKey)
		pipe.Del(ctx, Key(kernel.Pallet), Key(kernel.Package))
		return nil
	})
	return err
}

func (c *Cache) version(ctx context.Context) (int64, error) {
	v, err := c.client.Get(ctx, versionKey).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return v, err
}

func (c *Cache) read(ctx context.Context, key string) ([]*pricing.Rule, error) {
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		return nil, err
	}

	var entries []ruleEntry
	if err = json.Unmarshal(data, &entries); err != nil {
		return nil, err
	}

	rules := make([]*pricing.Rule, 0, len(entries))
	for _, e := range entries {
		rule, err := e.toDomain()
		if err != nil {
			return nil, err
		}
		rules = append(rules, rule)
	}
	return rules, nil
}

// write stores rules loaded under the given version. The write is skipped
// when an invalidation has moved the version on since then.
func (c *Cache) write(ctx context.Context, key string, version int64, rules []*pricing.Rule) error {
	entries := make([]ruleEntry, 0, len(rules))
	for _, r := range rules {
		entries = append(entries, fromDomain(r))
	}

	data, err := json.Marshal(entries)
	if err != nil {
		return err
	}

	err = c.client.Watch(ctx, func(tx *redis.Tx) error {
		current, getErr := tx.Get(ctx, versionKey).Int64()
		if getErr != nil && !errors.Is(getErr, redis.Nil) {
			return getErr
		}
		if current != version {
			c.logger.DebugContext(ctx, "pricing rules changed during load, skipping cache fill", "key", key)
			return nil
		}
		_, pipeErr := tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, data, c.ttl)
			return nil
		})
		return pipeErr
	}, versionKey)
	if errors.Is(err, redis.TxFailedErr) {
		c.logger.DebugContext(ctx, "pricing rules changed during cache fill", "key", key)
		return nil
	}
	return err
}
