// Package clientrepo keeps the client attributes the engine needs: the
// negotiated discount and the used warehouse volume.
package clientrepo

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ClientDTO struct {
	ID                uuid.UUID       `gorm:"type:uuid;primaryKey"`
	DiscountPercent   decimal.Decimal `gorm:"type:numeric(5,2);not null;default:0"`
	CapacityUsedCbm   float64         `gorm:"type:double precision;not null;default:0"`
	CapacityUpdatedAt *time.Time      `gorm:"type:timestamptz"`
}

func (ClientDTO) TableName() string {
	return "clients"
}
