package pricingcache

import (
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/pricing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ruleEntry is the cached form of a rule. The slice order of a cached set is
// the storage order the matcher relies on.
type ruleEntry struct {
	ID            uuid.UUID       `json:"id"`
	Name          string          `json:"name"`
	TransportType int             `json:"transportType"`
	Type          int             `json:"type"`
	PalletMin     *int            `json:"palletMin,omitempty"`
	PalletMax     *int            `json:"palletMax,omitempty"`
	VolumeMin     *float64        `json:"volumeMin,omitempty"`
	VolumeMax     *float64        `json:"volumeMax,omitempty"`
	WeightMin     *float64        `json:"weightMin,omitempty"`
	WeightMax     *float64        `json:"weightMax,omitempty"`
	PriceEur      decimal.Decimal `json:"priceEur"`
	Priority      int             `json:"priority"`
	IsActive      bool            `json:"isActive"`
}

func fromDomain(r *pricing.Rule) ruleEntry {
	p := r.Params()
	return ruleEntry{
		ID:            r.ID().Bytes(),
		Name:          p.Name,
		TransportType: int(p.TransportType),
		Type:          int(p.Type),
		PalletMin:     p.PalletCount.Min,
		PalletMax:     p.PalletCount.Max,
		VolumeMin:     p.VolumeCbm.Min,
		VolumeMax:     p.VolumeCbm.Max,
		WeightMin:     p.WeightKg.Min,
		WeightMax:     p.WeightKg.Max,
		PriceEur:      p.PriceEur,
		Priority:      p.Priority,
		IsActive:      p.IsActive,
	}
}

func (e ruleEntry) toDomain() (*pricing.Rule, error) {
	id, err := kernel.UUIDFromBytes(e.ID[:])
	if err != nil {
		return nil, err
	}
	return pricing.RestoreRule(id, pricing.Params{
		Name:          e.Name,
		TransportType: kernel.TransportType(e.TransportType),
		Type:          pricing.RuleType(e.Type),
		PalletCount:   pricing.Range[int]{Min: e.PalletMin, Max: e.PalletMax},
		VolumeCbm:     pricing.Range[float64]{Min: e.VolumeMin, Max: e.VolumeMax},
		WeightKg:      pricing.Range[float64]{Min: e.WeightMin, Max: e.WeightMax},
		PriceEur:      e.PriceEur,
		Priority:      e.Priority,
		IsActive:      e.IsActive,
	})
}
