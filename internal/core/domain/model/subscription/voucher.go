package subscription

import (
	"errors"
	"strings"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var ErrVoucherIsNotConstructed = errors.New("Voucher must be created via NewVoucher or RestoreVoucher")

// Voucher is a one-time discount on a subscription invoice.
type Voucher struct {
	id             kernel.UUID
	code           string
	amountEur      decimal.Decimal
	expiresAt      *time.Time
	usedByClientID *kernel.UUID
	usedAt         *time.Time

	isConstructed bool
}

func NewVoucher(id kernel.UUID, code string, amountEur decimal.Decimal, expiresAt *time.Time) (*Voucher, error) {
	code = strings.ToUpper(strings.TrimSpace(code))

	var errCode, errAmount error
	if code == "" {
		errCode = errs.NewValueIsRequiredError("code")
	}
	if !amountEur.IsPositive() {
		errAmount = errs.NewValueIsOutOfRangeError("amountEur", amountEur, 0.01, "unbounded")
	}
	if err := errors.Join(id.Validate(), errCode, errAmount); err != nil {
		return nil, err
	}

	return &Voucher{
		id:            id,
		code:          code,
		amountEur:     amountEur,
		expiresAt:     expiresAt,
		isConstructed: true,
	}, nil
}

func RestoreVoucher(
	id kernel.UUID,
	code string,
	amountEur decimal.Decimal,
	expiresAt *time.Time,
	usedByClientID *kernel.UUID,
	usedAt *time.Time,
) (*Voucher, error) {
	v, err := NewVoucher(id, code, amountEur, expiresAt)
	if err != nil {
		return nil, err
	}
	v.usedByClientID = usedByClientID
	v.usedAt = usedAt
	return v, nil
}

func (v *Voucher) Validate() error {
	if v == nil || !v.isConstructed {
		return ErrVoucherIsNotConstructed
	}
	return nil
}

func (v *Voucher) ID() kernel.UUID { return v.id }

func (v *Voucher) Code() string { return v.code }

func (v *Voucher) AmountEur() decimal.Decimal { return v.amountEur }

func (v *Voucher) ExpiresAt() *time.Time { return v.expiresAt }

func (v *Voucher) UsedByClientID() *kernel.UUID { return v.usedByClientID }

func (v *Voucher) UsedAt() *time.Time { return v.usedAt }

// IsValid reports whether the voucher is unused and not expired at now.
func (v *Voucher) IsValid(now time.Time) bool {
	if v.usedByClientID != nil {
		return false
	}
	return v.expiresAt == nil || v.expiresAt.After(now)
}

// Redeem marks the voucher as used by the client.
func (v *Voucher) Redeem(clientID kernel.UUID, now time.Time) error {
	if err := clientID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("clientId", err)
	}
	if !v.IsValid(now) {
		return errs.NewStateConflictError("voucher", v.code, "be redeemed")
	}
	usedAt := now.UTC()
	v.usedByClientID = &clientID
	v.usedAt = &usedAt
	return nil
}
