package shipment

import (
	"fmt"
	"strings"

	"fulfillment/internal/pkg/errs"
)

// Status is the lifecycle state of a shipment.
type Status int

const (
	Unknown Status = iota
	Pending
	AwaitingAcceptance
	CustomQuoteRequested
	AwaitingPayment
	ReadyForLoading
	Released
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:              "UNKNOWN",
		Pending:              "PENDING",
		AwaitingAcceptance:   "AWAITING_ACCEPTANCE",
		CustomQuoteRequested: "CUSTOM_QUOTE_REQUESTED",
		AwaitingPayment:      "AWAITING_PAYMENT",
		ReadyForLoading:      "READY_FOR_LOADING",
		Released:             "RELEASED",
	}
}

func (s Status) Validate() error {
	if s < Pending || s > Released {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// Choice is the client's decision after a quote.
type Choice int

const (
	NoChoice Choice = iota
	Accept
	RequestCustom
	OwnTransport
)

func getChoiceStrings() map[Choice]string {
	return map[Choice]string{
		NoChoice:      "",
		Accept:        "ACCEPT",
		RequestCustom: "REQUEST_CUSTOM",
		OwnTransport:  "OWN_TRANSPORT",
	}
}

func ParseChoice(s string) (Choice, error) {
	for c, name := range getChoiceStrings() {
		if c != NoChoice && strings.EqualFold(name, s) {
			return c, nil
		}
	}
	return NoChoice, errs.NewValueIsInvalidErrorWithCause(
		"transportChoice", fmt.Errorf("%q is not one of ACCEPT, REQUEST_CUSTOM, OWN_TRANSPORT", s))
}

func (c Choice) String() string {
	return getChoiceStrings()[c]
}

// PaymentMethod decides where an accepted shipment goes next.
type PaymentMethod int

const (
	NoPaymentMethod PaymentMethod = iota
	// Online payments go through a payment link.
	Online
	// BankTransfer waits for the transfer to be booked.
	BankTransfer
	// OnAccount is invoiced later; loading is not blocked on payment.
	OnAccount
)

func getPaymentMethodStrings() map[PaymentMethod]string {
	return map[PaymentMethod]string{
		NoPaymentMethod: "",
		Online:          "ONLINE",
		BankTransfer:    "BANK_TRANSFER",
		OnAccount:       "ON_ACCOUNT",
	}
}

// ParsePaymentMethod maps an empty string to NoPaymentMethod.
func ParsePaymentMethod(s string) (PaymentMethod, error) {
	if strings.TrimSpace(s) == "" {
		return NoPaymentMethod, nil
	}
	for m, name := range getPaymentMethodStrings() {
		if m != NoPaymentMethod && strings.EqualFold(name, s) {
			return m, nil
		}
	}
	return NoPaymentMethod, errs.NewValueIsInvalidErrorWithCause(
		"paymentMethod", fmt.Errorf("%q is not one of ONLINE, BANK_TRANSFER, ON_ACCOUNT", s))
}

func (m PaymentMethod) String() string {
	return getPaymentMethodStrings()[m]
}
