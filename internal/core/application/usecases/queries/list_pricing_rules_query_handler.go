package queries

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/pricing"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ListPricingRulesQueryHandler struct {
	db *gorm.DB
}

func NewListPricingRulesQueryHandler(db *gorm.DB) ListPricingRulesQueryHandler {
	return ListPricingRulesQueryHandler{db: db}
}

// Handle returns rules grouped by transport type, highest priority first,
// in the order the matcher would try them.
func (h ListPricingRulesQueryHandler) Handle(ctx context.Context, query ListPricingRulesQuery) ([]PricingRuleView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	db := h.db.WithContext(ctx).Table("pricing_rules").Select(`
		id, name, transport_type, rule_type,
		pallet_min, pallet_max, volume_min, volume_max, weight_min, weight_max,
		price_eur, priority, is_active`)
	if query.transportType != kernel.UnknownTransportType {
		db = db.Where("transport_type = ?", int(query.transportType))
	}
	if !query.includeInactive {
		db = db.Where("is_active")
	}

	rows, err := db.Order("transport_type, priority DESC, seq").Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	views := make([]PricingRuleView, 0)
	for rows.Next() {
		var (
			id            uuid.UUID
			transportType int
			ruleType      int
			v             PricingRuleView
		)
		err = rows.Scan(
			&id, &v.Name, &transportType, &ruleType,
			&v.PalletMin, &v.PalletMax, &v.VolumeMinCbm, &v.VolumeMaxCbm, &v.WeightMinKg, &v.WeightMaxKg,
			&v.PriceEur, &v.Priority, &v.IsActive,
		)
		if err != nil {
			return nil, err
		}

		if v.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		v.TransportType = kernel.TransportType(transportType).String()
		v.RuleType = pricing.RuleType(ruleType).String()
		views = append(views, v)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return views, nil
}
