package pricingrepo

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/pricing"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
)

type GormRuleRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormRuleRepository(db *gorm.DB, tracker aggregateTracker) *GormRuleRepository {
	return &GormRuleRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormRuleRepository) Add(ctx context.Context, rule *pricing.Rule) error {
	if err := rule.Validate(); err != nil {
		return err
	}

	dto := fromDomain(rule)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(rule.ID(), rule)
	return nil
}

func (r *GormRuleRepository) Update(ctx context.Context, rule *pricing.Rule) error {
	if err := rule.Validate(); err != nil {
		return err
	}

	dto := fromDomain(rule)
	result := r.db.WithContext(ctx).Model(&RuleDTO{}).Where("id = ?", dto.ID).
		Select("*").Omit("id", "seq", "created_at").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(rule.ID(), rule)
	return nil
}

func (r *GormRuleRepository) Get(ctx context.Context, id kernel.UUID) (*pricing.Rule, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto RuleDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("pricingRuleId", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Delete removes the rule. Shipments keep their price and rule id.
func (r *GormRuleRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&RuleDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("pricingRuleId", id.String())
	}

	return nil
}

// ListActive returns the active rules of one transport type in insertion
// order, the tie-break order the matcher expects.
func (r *GormRuleRepository) ListActive(ctx context.Context, transportType kernel.TransportType) ([]*pricing.Rule, error) {
	var dtos []RuleDTO
	err := r.db.WithContext(ctx).
		Where("is_active AND transport_type = ?", int(transportType)).
		Order("seq").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	rules := make([]*pricing.Rule, 0, len(dtos))
	for _, dto := range dtos {
		rule, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		rules = append(rules, rule)
	}

	return rules, nil
}
