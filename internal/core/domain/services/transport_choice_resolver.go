package services

import (
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/shipment"
	"fulfillment/internal/pkg/errs"
)

// ChoiceRequest is the client's reaction to a quote.
type ChoiceRequest struct {
	Choice        shipment.Choice
	PaymentMethod shipment.PaymentMethod
	OwnTransport  *shipment.OwnTransportDetails
	// MembersPacked tells whether every warehouse order of the shipment is
	// ready to ship. An own-transport shipment only goes to loading then.
	MembersPacked bool
}

// ChoiceOutcome lists what the caller has to do after saving the shipment.
type ChoiceOutcome struct {
	Changed bool
	// IssueInvoice is set while an accepted shipment has no invoice yet.
	IssueInvoice bool
	// RequestPaymentLink is set once, on an ONLINE acceptance.
	RequestPaymentLink bool
	// NotifySales is set once, when a custom quote is requested.
	NotifySales bool
}

// TransportChoiceResolver applies ACCEPT, REQUEST_CUSTOM or OWN_TRANSPORT to a
// shipment. Repeating a choice is safe: the outcome of a repeat carries no
// side effects that already happened.
type TransportChoiceResolver struct{}

func NewTransportChoiceResolver() TransportChoiceResolver {
	return TransportChoiceResolver{}
}

// Resolve changes s in place. dominant is the shipment's aggregate transport
// type; it selects the rule own-transport details are validated with.
func (r TransportChoiceResolver) Resolve(
	s *shipment.Shipment,
	dominant kernel.TransportType,
	req ChoiceRequest,
) (ChoiceOutcome, error) {
	if err := s.Validate(); err != nil {
		return ChoiceOutcome{}, err
	}

	switch req.Choice {
	case shipment.Accept:
		changed, err := s.Accept(req.PaymentMethod)
		if err != nil {
			return ChoiceOutcome{}, err
		}
		return ChoiceOutcome{
			Changed:            changed,
			IssueInvoice:       s.InvoiceID() == nil,
			RequestPaymentLink: changed && s.PaymentMethod() == shipment.Online,
		}, nil

	case shipment.RequestCustom:
		changed, err := s.RequestCustomQuote()
		if err != nil {
			return ChoiceOutcome{}, err
		}
		return ChoiceOutcome{Changed: changed, NotifySales: changed}, nil

	case shipment.OwnTransport:
		if err := s.ChooseOwnTransport(dominant, req.OwnTransport); err != nil {
			return ChoiceOutcome{}, err
		}
		if req.MembersPacked {
			s.MarkMembersPacked()
		}
		return ChoiceOutcome{Changed: true}, nil

	case shipment.NoChoice:
	}
	return ChoiceOutcome{}, errs.NewValueIsRequiredError("transportChoice")
}
