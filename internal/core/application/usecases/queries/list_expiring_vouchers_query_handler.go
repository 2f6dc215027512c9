package queries

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ListExpiringVouchersQueryHandler struct {
	db *gorm.DB
}

func NewListExpiringVouchersQueryHandler(db *gorm.DB) ListExpiringVouchersQueryHandler {
	return ListExpiringVouchersQueryHandler{db: db}
}

// Handle returns the vouchers soonest to expire first.
func (h ListExpiringVouchersQueryHandler) Handle(
	ctx context.Context,
	query ListExpiringVouchersQuery,
) ([]ExpiringVoucherView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT code, amount_eur, expires_at
		FROM vouchers
		WHERE used_by_client_id IS NULL
			AND expires_at > ?
			AND expires_at <= ?
		ORDER BY expires_at, code
	`, query.from, query.until).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	views := make([]ExpiringVoucherView, 0)
	for rows.Next() {
		var (
			code      string
			amount    decimal.Decimal
			expiresAt time.Time
		)
		if err = rows.Scan(&code, &amount, &expiresAt); err != nil {
			return nil, err
		}
		views = append(views, ExpiringVoucherView{Code: code, AmountEur: amount, ExpiresAt: expiresAt.UTC()})
	}
	return views, rows.Err()
}
