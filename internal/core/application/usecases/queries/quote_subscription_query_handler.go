package queries

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/subscription"
	"fulfillment/internal/core/domain/services"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type QuoteSubscriptionQueryHandler struct {
	db         *gorm.DB
	calculator services.SubscriptionPriceCalculator
	now        func() time.Time
}

func NewQuoteSubscriptionQueryHandler(db *gorm.DB) QuoteSubscriptionQueryHandler {
	return QuoteSubscriptionQueryHandler{
		db:         db,
		calculator: services.NewSubscriptionPriceCalculator(),
		now:        time.Now,
	}
}

func (h QuoteSubscriptionQueryHandler) Handle(
	ctx context.Context,
	query QuoteSubscriptionQuery,
) (services.SubscriptionQuote, error) {
	if err := query.Validate(); err != nil {
		return services.SubscriptionQuote{}, err
	}

	db := h.db.WithContext(ctx)
	in := services.SubscriptionInput{
		Plan:            query.plan,
		Period:          query.period,
		DiscountPercent: decimal.Zero,
		SetupFeeEur:     decimal.Zero,
		Now:             h.now(),
	}

	err := db.Raw(`SELECT COALESCE((SELECT discount_percent FROM clients WHERE id = ?), 0)`,
		query.clientID.Bytes()).Row().Scan(&in.DiscountPercent)
	if err != nil {
		return services.SubscriptionQuote{}, err
	}

	err = db.Raw(`
		SELECT COALESCE((
			SELECT amount_eur
			FROM setup_fees
			WHERE client_id = ? AND invoiced_at IS NULL
			ORDER BY created_at, id
			LIMIT 1
		), 0)
	`, query.clientID.Bytes()).Row().Scan(&in.SetupFeeEur)
	if err != nil {
		return services.SubscriptionQuote{}, err
	}

	if query.voucherCode != "" {
		if in.Voucher, err = h.voucher(ctx, query.voucherCode); err != nil {
			return services.SubscriptionQuote{}, err
		}
	}

	return h.calculator.Calculate(in)
}

// voucher returns nil for an unknown code.
func (h QuoteSubscriptionQueryHandler) voucher(ctx context.Context, code string) (*subscription.Voucher, error) {
	var row struct {
		ID             uuid.UUID
		Code           string
		AmountEur      decimal.Decimal
		ExpiresAt      *time.Time
		UsedByClientID *uuid.UUID
		UsedAt         *time.Time
	}

	result := h.db.WithContext(ctx).Raw(`
		SELECT id, code, amount_eur, expires_at, used_by_client_id, used_at
		FROM vouchers
		WHERE code = ?
	`, code).Scan(&row)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, nil //nolint:nilnil // unknown codes take nothing off
	}

	id, err := kernel.UUIDFromBytes(row.ID[:])
	if err != nil {
		return nil, err
	}
	usedBy, err := optionalID(row.UsedByClientID)
	if err != nil {
		return nil, err
	}

	return subscription.RestoreVoucher(id, row.Code, row.AmountEur, row.ExpiresAt, usedBy, row.UsedAt)
}
