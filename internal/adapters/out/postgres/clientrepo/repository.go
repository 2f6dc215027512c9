package clientrepo

import (
	"context"
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GormClientRepository struct {
	db  *gorm.DB
	now func() time.Time
}

func NewGormClientRepository(db *gorm.DB) *GormClientRepository {
	return &GormClientRepository{
		db:  db,
		now: time.Now,
	}
}

func (r *GormClientRepository) DiscountPercent(ctx context.Context, clientID kernel.UUID) (decimal.Decimal, error) {
	if err := clientID.Validate(); err != nil {
		return decimal.Zero, err
	}

	var dto ClientDTO
	err := r.db.WithContext(ctx).Select("discount_percent").First(&dto, "id = ?", clientID.Bytes()).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return decimal.Zero, nil
	}
	if err != nil {
		return decimal.Zero, err
	}

	return dto.DiscountPercent, nil
}

// UpdateCapacityUsage upserts the row, leaving the discount untouched.
func (r *GormClientRepository) UpdateCapacityUsage(ctx context.Context, clientID kernel.UUID, usedCbm float64) error {
	if err := clientID.Validate(); err != nil {
		return err
	}

	now := r.now().UTC()
	dto := ClientDTO{
		ID:                clientID.Bytes(),
		DiscountPercent:   decimal.Zero,
		CapacityUsedCbm:   usedCbm,
		CapacityUpdatedAt: &now,
	}

	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"capacity_used_cbm", "capacity_updated_at"}),
	}).Create(&dto).Error
}
