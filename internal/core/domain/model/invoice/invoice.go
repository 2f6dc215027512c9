// Package invoice models the invoices the engine emits. Booking, delivery and
// numbering of invoices are handled downstream; the engine only records the
// amount and what it was issued for.
package invoice

import (
	"errors"
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var ErrInvoiceIsNotConstructed = errors.New("Invoice must be created via a New... constructor or RestoreInvoice")

type Kind int

const (
	UnknownKind Kind = iota
	Transport
	Subscription
)

func (k Kind) String() string {
	switch k {
	case Transport:
		return "TRANSPORT"
	case Subscription:
		return "SUBSCRIPTION"
	case UnknownKind:
	}
	return "UNKNOWN"
}

type Status int

const (
	UnknownStatus Status = iota
	Open
	Paid
)

func (s Status) String() string {
	switch s {
	case Open:
		return "OPEN"
	case Paid:
		return "PAID"
	case UnknownStatus:
	}
	return "UNKNOWN"
}

type Invoice struct {
	id         kernel.UUID
	clientID   kernel.UUID
	kind       Kind
	shipmentID *kernel.UUID
	amountEur  decimal.Decimal
	status     Status
	issuedAt   time.Time
	paidAt     *time.Time

	isConstructed bool
}

// NewTransportInvoice bills an accepted shipment. At most one exists per
// shipment; the store enforces it.
func NewTransportInvoice(id, clientID, shipmentID kernel.UUID, amountEur decimal.Decimal, issuedAt time.Time) (*Invoice, error) {
	if err := shipmentID.Validate(); err != nil {
		return nil, errs.NewValueIsRequiredErrorWithCause("shipmentId", err)
	}
	inv, err := newInvoice(id, clientID, Transport, amountEur, issuedAt)
	if err != nil {
		return nil, err
	}
	inv.shipmentID = &shipmentID
	return inv, nil
}

func NewSubscriptionInvoice(id, clientID kernel.UUID, amountEur decimal.Decimal, issuedAt time.Time) (*Invoice, error) {
	return newInvoice(id, clientID, Subscription, amountEur, issuedAt)
}

func newInvoice(id, clientID kernel.UUID, kind Kind, amountEur decimal.Decimal, issuedAt time.Time) (*Invoice, error) {
	var errAmount error
	if amountEur.IsNegative() {
		errAmount = errs.NewValueIsOutOfRangeError("amountEur", amountEur, 0, "unbounded")
	}
	if err := errors.Join(id.Validate(), clientID.Validate(), errAmount); err != nil {
		return nil, err
	}

	return &Invoice{
		id:            id,
		clientID:      clientID,
		kind:          kind,
		amountEur:     amountEur,
		status:        Open,
		issuedAt:      issuedAt.UTC(),
		isConstructed: true,
	}, nil
}

func RestoreInvoice(
	id, clientID kernel.UUID,
	kind Kind,
	shipmentID *kernel.UUID,
	amountEur decimal.Decimal,
	status Status,
	issuedAt time.Time,
	paidAt *time.Time,
) (*Invoice, error) {
	if status != Open && status != Paid {
		return nil, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid invoice status", status))
	}
	inv, err := newInvoice(id, clientID, kind, amountEur, issuedAt)
	if err != nil {
		return nil, err
	}
	inv.shipmentID = shipmentID
	inv.status = status
	inv.paidAt = paidAt
	return inv, nil
}

func (i *Invoice) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrInvoiceIsNotConstructed
	}
	return nil
}

func (i *Invoice) ID() kernel.UUID { return i.id }

func (i *Invoice) ClientID() kernel.UUID { return i.clientID }

func (i *Invoice) Kind() Kind { return i.kind }

func (i *Invoice) ShipmentID() *kernel.UUID { return i.shipmentID }

func (i *Invoice) AmountEur() decimal.Decimal { return i.amountEur }

func (i *Invoice) Status() Status { return i.status }

func (i *Invoice) IssuedAt() time.Time { return i.issuedAt }

func (i *Invoice) PaidAt() *time.Time { return i.paidAt }

// MarkPaid is idempotent; it reports whether the invoice changed.
func (i *Invoice) MarkPaid(at time.Time) bool {
	if i.status == Paid {
		return false
	}
	paidAt := at.UTC()
	i.status = Paid
	i.paidAt = &paidAt
	return true
}
