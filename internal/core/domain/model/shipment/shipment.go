package shipment

import (
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/pricing"
	"fulfillment/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var ErrShipmentIsNotConstructed = errors.New("Shipment must be created via NewShipment or RestoreShipment")

// Shipment is the shipment order aggregate root. It references its member
// warehouse orders by id; each member belongs to at most one active shipment,
// which the repositories enforce.
type Shipment struct {
	id               kernel.UUID
	clientID         kernel.UUID
	status           Status
	orderIDs         []kernel.UUID
	dominantType     kernel.TransportType
	priceEur         *decimal.Decimal
	pricingRuleID    *kernel.UUID
	needsManualQuote bool
	choice           Choice
	paymentMethod    PaymentMethod
	ownTransport     *OwnTransportDetails
	invoiceID        *kernel.UUID

	isConstructed bool
}

// NewShipment creates a Pending shipment over the given warehouse orders.
func NewShipment(id, clientID kernel.UUID, orderIDs []kernel.UUID) (*Shipment, error) {
	s := &Shipment{status: Pending, isConstructed: true}

	if err := errors.Join(
		id.Validate(),
		validateClientID(clientID),
		s.setOrderIDs(orderIDs),
	); err != nil {
		return nil, err
	}

	s.id = id
	s.clientID = clientID
	return s, nil
}

// RestoreState carries persisted fields for RestoreShipment.
type RestoreState struct {
	ID               kernel.UUID
	ClientID         kernel.UUID
	Status           Status
	OrderIDs         []kernel.UUID
	DominantType     kernel.TransportType
	PriceEur         *decimal.Decimal
	PricingRuleID    *kernel.UUID
	NeedsManualQuote bool
	Choice           Choice
	PaymentMethod    PaymentMethod
	OwnTransport     *OwnTransportDetails
	InvoiceID        *kernel.UUID
}

func RestoreShipment(st RestoreState) (*Shipment, error) {
	s, err := NewShipment(st.ID, st.ClientID, st.OrderIDs)
	if err != nil {
		return nil, err
	}
	if err = st.Status.Validate(); err != nil {
		return nil, err
	}

	s.status = st.Status
	s.dominantType = st.DominantType
	s.priceEur = st.PriceEur
	s.pricingRuleID = st.PricingRuleID
	s.needsManualQuote = st.NeedsManualQuote
	s.choice = st.Choice
	s.paymentMethod = st.PaymentMethod
	s.ownTransport = st.OwnTransport
	s.invoiceID = st.InvoiceID
	return s, nil
}

func (s *Shipment) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrShipmentIsNotConstructed
	}
	return nil
}

func (s *Shipment) ID() kernel.UUID                    { return s.id }
func (s *Shipment) ClientID() kernel.UUID              { return s.clientID }
func (s *Shipment) Status() Status                     { return s.status }
func (s *Shipment) DominantType() kernel.TransportType { return s.dominantType }
func (s *Shipment) PriceEur() *decimal.Decimal         { return s.priceEur }
func (s *Shipment) PricingRuleID() *kernel.UUID        { return s.pricingRuleID }
func (s *Shipment) NeedsManualQuote() bool             { return s.needsManualQuote }
func (s *Shipment) Choice() Choice                     { return s.choice }
func (s *Shipment) PaymentMethod() PaymentMethod       { return s.paymentMethod }
func (s *Shipment) InvoiceID() *kernel.UUID            { return s.invoiceID }

// OrderIDs returns a copy of the member warehouse order ids.
func (s *Shipment) OrderIDs() []kernel.UUID {
	return append([]kernel.UUID(nil), s.orderIDs...)
}

// OwnTransport returns a copy of the own-transport details, if any.
func (s *Shipment) OwnTransport() *OwnTransportDetails {
	if s.ownTransport == nil {
		return nil
	}
	d := *s.ownTransport
	return &d
}

func (s *Shipment) IsActive() bool {
	return s.status != Released
}

func (s *Shipment) IsPriced() bool {
	return s.priceEur != nil
}

// AcceptsQuote reports whether consolidation may still price the shipment:
// it is Pending, unpriced and the client has not chosen yet.
func (s *Shipment) AcceptsQuote() bool {
	return s.status == Pending && s.choice == NoChoice && s.priceEur == nil
}

// ApplyQuote records the consolidation result. A nil quote keeps the shipment
// unpriced and flags it for a manual quote. Once priced, or once the client
// has chosen, the shipment no longer changes here. It reports whether
// anything changed, so repeated runs over the same state are no-ops.
func (s *Shipment) ApplyQuote(dominant kernel.TransportType, quote *pricing.Quote) (bool, error) {
	if err := dominant.Validate(); err != nil {
		return false, err
	}
	if !s.AcceptsQuote() {
		return false, nil
	}

	if quote == nil {
		changed := !s.needsManualQuote || s.dominantType != dominant
		s.needsManualQuote = true
		s.dominantType = dominant
		return changed, nil
	}

	if err := quote.RuleID.Validate(); err != nil {
		return false, err
	}

	price := quote.PriceEur
	ruleID := quote.RuleID
	s.priceEur = &price
	s.pricingRuleID = &ruleID
	s.dominantType = dominant
	s.needsManualQuote = false
	s.status = AwaitingAcceptance
	return true, nil
}

// Accept records the client's acceptance of the calculated price. It returns
// false without error when the shipment was already accepted, so callers can
// skip creating a second invoice.
func (s *Shipment) Accept(method PaymentMethod) (bool, error) {
	if s.choice == Accept && (s.status == AwaitingPayment || s.status == ReadyForLoading || s.status == Released) {
		return false, nil
	}
	if s.status != AwaitingAcceptance {
		return false, errs.NewStateConflictError("shipment", s.status.String(), "accept the price")
	}
	if s.priceEur == nil {
		return false, errs.NewStateConflictError("shipment", "unpriced", "accept the price")
	}

	if method == NoPaymentMethod {
		method = BankTransfer
	}

	s.choice = Accept
	s.paymentMethod = method
	if method == OnAccount {
		s.status = ReadyForLoading
	} else {
		s.status = AwaitingPayment
	}
	return true, nil
}

// RequestCustomQuote hands the shipment to manual pricing. The calculated
// price, if any, is kept. It returns false when already requested.
func (s *Shipment) RequestCustomQuote() (bool, error) {
	if s.status == CustomQuoteRequested {
		return false, nil
	}
	if s.status != Pending && s.status != AwaitingAcceptance {
		return false, errs.NewStateConflictError("shipment", s.status.String(), "request a custom quote")
	}

	s.choice = RequestCustom
	s.needsManualQuote = true
	s.status = CustomQuoteRequested
	return true, nil
}

// ChooseOwnTransport registers the client's own pickup. details may be nil on
// the first call; a later call may attach or replace them while the shipment
// waits for loading. dominant decides which detail rule applies. A priced
// shipment goes straight to loading; any other one stays Pending until
// MarkMembersPacked reports its warehouse orders ready.
func (s *Shipment) ChooseOwnTransport(dominant kernel.TransportType, details *OwnTransportDetails) error {
	switch {
	case s.status == Pending, s.status == AwaitingAcceptance, s.status == CustomQuoteRequested:
	case s.status == ReadyForLoading && s.choice == OwnTransport:
	default:
		return errs.NewStateConflictError("shipment", s.status.String(), "switch to own transport")
	}

	if details != nil {
		d := details.normalized()
		if err := d.validateFor(dominant); err != nil {
			return err
		}
		if d.IsEmpty() {
			details = nil
		} else {
			details = &d
		}
	}

	if details != nil || s.choice != OwnTransport {
		s.ownTransport = details
	}
	if dominant != kernel.UnknownTransportType && s.dominantType == kernel.UnknownTransportType {
		s.dominantType = dominant
	}
	s.choice = OwnTransport
	s.paymentMethod = NoPaymentMethod
	switch s.status {
	case AwaitingAcceptance:
		s.status = ReadyForLoading
	case CustomQuoteRequested:
		s.status = Pending
	case Unknown, Pending, AwaitingPayment, ReadyForLoading, Released:
	}
	return nil
}

// MarkMembersPacked moves a pending own-transport shipment to loading once
// every warehouse order is packed. It reports whether the status changed.
func (s *Shipment) MarkMembersPacked() bool {
	if s.status != Pending || s.choice != OwnTransport {
		return false
	}
	s.status = ReadyForLoading
	return true
}

// AttachInvoice links the transport invoice created for an acceptance.
func (s *Shipment) AttachInvoice(invoiceID kernel.UUID) error {
	if err := invoiceID.Validate(); err != nil {
		return err
	}
	if s.choice != Accept {
		return errs.NewStateConflictError("shipment", s.status.String(), "be invoiced without acceptance")
	}
	if s.invoiceID != nil && !s.invoiceID.IsEqual(invoiceID) {
		return errs.NewStateConflictError("shipment", "invoiced", fmt.Sprintf("take a second invoice %s", invoiceID))
	}
	s.invoiceID = &invoiceID
	return nil
}

// MarkPaid moves AwaitingPayment to ReadyForLoading. Repeated payment
// notifications return false without error.
func (s *Shipment) MarkPaid() (bool, error) {
	switch s.status {
	case AwaitingPayment:
		s.status = ReadyForLoading
		return true, nil
	case ReadyForLoading, Released:
		if s.choice == Accept {
			return false, nil
		}
	case Unknown, Pending, AwaitingAcceptance, CustomQuoteRequested:
	}
	return false, errs.NewStateConflictError("shipment", s.status.String(), "be paid")
}

// Release hands the goods over. For own-transport pallet pickups with a
// stored registration the presenting vehicle must match it.
func (s *Shipment) Release(presentedRegistration string) error {
	if s.status != ReadyForLoading {
		return errs.NewStateConflictError("shipment", s.status.String(), "be released")
	}

	if s.requiresRegistrationMatch() {
		presented := NormalizeRegistration(presentedRegistration)
		if presented == "" {
			return errs.NewValueIsRequiredError("vehicleRegistration")
		}
		if presented != NormalizeRegistration(s.ownTransport.VehicleRegistration) {
			return errs.NewValueIsInvalidErrorWithCause(
				"vehicleRegistration",
				fmt.Errorf("%s does not match the registered pickup vehicle", presented),
			)
		}
	}

	s.status = Released
	return nil
}

func (s *Shipment) requiresRegistrationMatch() bool {
	return s.choice == OwnTransport &&
		s.dominantType == kernel.Pallet &&
		s.ownTransport != nil &&
		NormalizeRegistration(s.ownTransport.VehicleRegistration) != ""
}

func (s *Shipment) setOrderIDs(ids []kernel.UUID) error {
	if len(ids) == 0 {
		return errs.NewValueIsRequiredError("warehouseOrderIds")
	}
	seen := make(map[kernel.UUID]struct{}, len(ids))
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return err
		}
		if _, ok := seen[id]; ok {
			return errs.NewValueIsInvalidErrorWithCause("warehouseOrderIds", fmt.Errorf("%s is listed twice", id))
		}
		seen[id] = struct{}{}
	}
	s.orderIDs = append([]kernel.UUID(nil), ids...)
	return nil
}

func validateClientID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("clientId", err)
	}
	return nil
}
