// Package pricingrepo persists transport pricing rules. A null bound column
// is an unbounded side of the range; Seq records insertion order.
package pricingrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/pricing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type RuleDTO struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name          string          `gorm:"type:varchar(255);not null"`
	TransportType int             `gorm:"type:smallint;not null;index:ix_pricing_rules_active_type,priority:2"`
	RuleType      int             `gorm:"type:smallint;not null"`
	PalletMin     *int            `gorm:"type:integer"`
	PalletMax     *int            `gorm:"type:integer"`
	VolumeMin     *float64        `gorm:"type:double precision"`
	VolumeMax     *float64        `gorm:"type:double precision"`
	WeightMin     *float64        `gorm:"type:double precision"`
	WeightMax     *float64        `gorm:"type:double precision"`
	PriceEur      decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Priority      int             `gorm:"not null;default:0"`
	IsActive      bool            `gorm:"not null;default:true;index:ix_pricing_rules_active_type,priority:1"`
	Seq           int64           `gorm:"autoIncrement;not null;uniqueIndex"`
	CreatedAt     time.Time       `gorm:"autoCreateTime"`
}

func (RuleDTO) TableName() string {
	return "pricing_rules"
}

func fromDomain(r *pricing.Rule) RuleDTO {
	p := r.Params()
	return RuleDTO{
		ID:            r.ID().Bytes(),
		Name:          p.Name,
		TransportType: int(p.TransportType),
		RuleType:      int(p.Type),
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

func toDomain(dto RuleDTO) (*pricing.Rule, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return pricing.RestoreRule(id, pricing.Params{
		Name:          dto.Name,
		TransportType: kernel.TransportType(dto.TransportType),
		Type:          pricing.RuleType(dto.RuleType),
		PalletCount:   pricing.Range[int]{Min: dto.PalletMin, Max: dto.PalletMax},
		VolumeCbm:     pricing.Range[float64]{Min: dto.VolumeMin, Max: dto.VolumeMax},
		WeightKg:      pricing.Range[float64]{Min: dto.WeightMin, Max: dto.WeightMax},
		PriceEur:      dto.PriceEur,
		Priority:      dto.Priority,
		IsActive:      dto.IsActive,
	})
}
