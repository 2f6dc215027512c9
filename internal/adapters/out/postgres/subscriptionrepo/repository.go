package subscriptionrepo

import (
	"context"
	"errors"
	"strings"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/subscription"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
)

type GormSubscriptionRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormSubscriptionRepository(db *gorm.DB, tracker aggregateTracker) *GormSubscriptionRepository {
	return &GormSubscriptionRepository{
		db:      db,
		tracker: tracker,
	}
}

// AddVoucher is used by back-office tooling and tests; the engine only
// redeems vouchers.
func (r *GormSubscriptionRepository) AddVoucher(ctx context.Context, v *subscription.Voucher) error {
	if err := v.Validate(); err != nil {
		return err
	}
	dto := voucherFromDomain(v)
	return r.db.WithContext(ctx).Create(&dto).Error
}

func (r *GormSubscriptionRepository) GetVoucherByCode(ctx context.Context, code string) (*subscription.Voucher, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return nil, errs.NewValueIsRequiredError("voucherCode")
	}

	var dto VoucherDTO
	if err := r.db.WithContext(ctx).First(&dto, "code = ?", code).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("voucherCode", code)
		}
		return nil, err
	}

	return voucherToDomain(dto)
}

// UpdateVoucher writes the redemption. Only an unused row is updated, so a
// concurrent or repeated redemption fails with a state conflict, also for the
// client that already used it.
func (r *GormSubscriptionRepository) UpdateVoucher(ctx context.Context, v *subscription.Voucher) error {
	if err := v.Validate(); err != nil {
		return err
	}

	dto := voucherFromDomain(v)
	result := r.db.WithContext(ctx).Model(&VoucherDTO{}).
		Where("id = ? AND used_by_client_id IS NULL", dto.ID).
		Select("used_by_client_id", "used_at").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewStateConflictError("voucher", v.Code(), "be redeemed twice")
	}

	r.tracker.TrackAggregate(v.ID(), v)
	return nil
}

func (r *GormSubscriptionRepository) AddSetupFee(ctx context.Context, f *subscription.SetupFee) error {
	dto := setupFeeFromDomain(f)
	return r.db.WithContext(ctx).Create(&dto).Error
}

func (r *GormSubscriptionRepository) GetPendingSetupFee(
	ctx context.Context,
	clientID kernel.UUID,
) (*subscription.SetupFee, error) {
	if err := clientID.Validate(); err != nil {
		return nil, err
	}

	var dto SetupFeeDTO
	err := r.db.WithContext(ctx).
		Where("client_id = ? AND invoiced_at IS NULL", clientID.Bytes()).
		Order("created_at, id").
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("setupFee", clientID.String())
		}
		return nil, err
	}

	return setupFeeToDomain(dto)
}

// UpdateSetupFee stamps a pending fee as invoiced. A fee already invoiced by
// another transaction is left alone and reported as a state conflict.
func (r *GormSubscriptionRepository) UpdateSetupFee(ctx context.Context, f *subscription.SetupFee) error {
	dto := setupFeeFromDomain(f)
	result := r.db.WithContext(ctx).Model(&SetupFeeDTO{}).Where("id = ? AND invoiced_at IS NULL", dto.ID).
		Select("invoiced_at").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewStateConflictError("setup fee", f.ID().String(), "be invoiced twice")
	}

	r.tracker.TrackAggregate(f.ID(), f)
	return nil
}
