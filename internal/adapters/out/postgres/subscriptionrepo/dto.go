// Package subscriptionrepo persists vouchers and one-off setup fees.
package subscriptionrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/subscription"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type VoucherDTO struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Code           string          `gorm:"type:varchar(64);not null;uniqueIndex"`
	AmountEur      decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	ExpiresAt      *time.Time      `gorm:"type:timestamptz"`
	UsedByClientID *uuid.UUID      `gorm:"type:uuid"`
	UsedAt         *time.Time      `gorm:"type:timestamptz"`
}

func (VoucherDTO) TableName() string {
	return "vouchers"
}

type SetupFeeDTO struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ClientID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	AmountEur  decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	InvoicedAt *time.Time      `gorm:"type:timestamptz"`
	CreatedAt  time.Time       `gorm:"autoCreateTime"`
}

func (SetupFeeDTO) TableName() string {
	return "setup_fees"
}

func voucherFromDomain(v *subscription.Voucher) VoucherDTO {
	dto := VoucherDTO{
		ID:        v.ID().Bytes(),
		Code:      v.Code(),
		AmountEur: v.AmountEur(),
		ExpiresAt: v.ExpiresAt(),
		UsedAt:    v.UsedAt(),
	}
	if id := v.UsedByClientID(); id != nil {
		raw := id.Bytes()
		dto.UsedByClientID = &raw
	}
	return dto
}

func voucherToDomain(dto VoucherDTO) (*subscription.Voucher, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var usedBy *kernel.UUID
	if dto.UsedByClientID != nil {
		clientID, cErr := kernel.UUIDFromBytes((*dto.UsedByClientID)[:])
		if cErr != nil {
			return nil, cErr
		}
		usedBy = &clientID
	}

	return subscription.RestoreVoucher(id, dto.Code, dto.AmountEur, dto.ExpiresAt, usedBy, dto.UsedAt)
}

func setupFeeFromDomain(f *subscription.SetupFee) SetupFeeDTO {
	return SetupFeeDTO{
		ID:         f.ID().Bytes(),
		ClientID:   f.ClientID().Bytes(),
		AmountEur:  f.AmountEur(),
		InvoicedAt: f.InvoicedAt(),
	}
}

func setupFeeToDomain(dto SetupFeeDTO) (*subscription.SetupFee, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	clientID, err := kernel.UUIDFromBytes(dto.ClientID[:])
	if err != nil {
		return nil, err
	}
	return subscription.RestoreSetupFee(id, clientID, dto.AmountEur, dto.InvoicedAt)
}
