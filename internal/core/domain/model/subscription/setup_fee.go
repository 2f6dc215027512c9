package subscription

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// SetupFee is a one-off onboarding charge added to the client's next
// subscription invoice.
type SetupFee struct {
	id         kernel.UUID
	clientID   kernel.UUID
	amountEur  decimal.Decimal
	invoicedAt *time.Time
}

func NewSetupFee(id, clientID kernel.UUID, amountEur decimal.Decimal) (*SetupFee, error) {
	var errAmount error
	if amountEur.IsNegative() {
		errAmount = errs.NewValueIsOutOfRangeError("amountEur", amountEur, 0, "unbounded")
	}
	if err := errors.Join(id.Validate(), clientID.Validate(), errAmount); err != nil {
		return nil, err
	}
	return &SetupFee{id: id, clientID: clientID, amountEur: amountEur}, nil
}

func RestoreSetupFee(id, clientID kernel.UUID, amountEur decimal.Decimal, invoicedAt *time.Time) (*SetupFee, error) {
	f, err := NewSetupFee(id, clientID, amountEur)
	if err != nil {
		return nil, err
	}
	f.invoicedAt = invoicedAt
	return f, nil
}

func (f *SetupFee) ID() kernel.UUID { return f.id }

func (f *SetupFee) ClientID() kernel.UUID { return f.clientID }

func (f *SetupFee) AmountEur() decimal.Decimal { return f.amountEur }

func (f *SetupFee) InvoicedAt() *time.Time { return f.invoicedAt }

func (f *SetupFee) IsPending() bool {
	return f.invoicedAt == nil
}

// MarkInvoiced stamps the fee so it is charged once.
func (f *SetupFee) MarkInvoiced(now time.Time) {
	if f.invoicedAt != nil {
		return
	}
	at := now.UTC()
	f.invoicedAt = &at
}
