package queries

import (
	"errors"
	"time"

	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrListExpiringVouchersQueryIsNotConstructed = errors.New(
	"ListExpiringVouchersQuery must be created via NewListExpiringVouchersQuery constructor",
)

// ListExpiringVouchersQuery finds unused vouchers whose expiry falls in
// (from, from+within].
type ListExpiringVouchersQuery struct {
	from  time.Time
	until time.Time

	guard guard.ConstructorGuard
}

func NewListExpiringVouchersQuery(from time.Time, within time.Duration) (ListExpiringVouchersQuery, error) {
	if within <= 0 {
		return ListExpiringVouchersQuery{}, errs.NewValueIsOutOfRangeError("within", within, "1ns", "unbounded")
	}
	return ListExpiringVouchersQuery{
		from:  from.UTC(),
		until: from.Add(within).UTC(),
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (q ListExpiringVouchersQuery) Validate() error {
	return q.guard.Validate(ErrListExpiringVouchersQueryIsNotConstructed)
}

type ExpiringVoucherView struct {
	Code      string
	AmountEur decimal.Decimal
	ExpiresAt time.Time
}
