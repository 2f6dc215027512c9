package commands

import (
	"errors"
	"strings"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/subscription"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrIssueSubscriptionInvoiceCommandIsNotConstructed = errors.New(
	"IssueSubscriptionInvoiceCommand must be created via NewIssueSubscriptionInvoiceCommand constructor",
)

// IssueSubscriptionInvoiceCommand bills one subscription period. VoucherCode
// is optional.
type IssueSubscriptionInvoiceCommand struct { //nolint:recvcheck //using for validation
	clientID    kernel.UUID
	plan        subscription.Plan
	period      subscription.Period
	voucherCode string

	guard guard.ConstructorGuard
}

func NewIssueSubscriptionInvoiceCommand(
	clientID kernel.UUID,
	plan subscription.Plan,
	period subscription.Period,
	voucherCode string,
) (IssueSubscriptionInvoiceCommand, error) {
	cmd := IssueSubscriptionInvoiceCommand{
		plan:        plan,
		period:      period,
		voucherCode: strings.ToUpper(strings.TrimSpace(voucherCode)),
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(cmd.setClientID(clientID), plan.Validate(), period.Validate()); err != nil {
		return IssueSubscriptionInvoiceCommand{}, err
	}
	return cmd, nil
}

func (c IssueSubscriptionInvoiceCommand) Validate() error {
	return c.guard.Validate(ErrIssueSubscriptionInvoiceCommandIsNotConstructed)
}

func (c IssueSubscriptionInvoiceCommand) ClientID() kernel.UUID { return c.clientID }

func (c IssueSubscriptionInvoiceCommand) Plan() subscription.Plan { return c.plan }

func (c IssueSubscriptionInvoiceCommand) Period() subscription.Period { return c.period }

func (c IssueSubscriptionInvoiceCommand) VoucherCode() string { return c.voucherCode }

func (c *IssueSubscriptionInvoiceCommand) setClientID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("clientId", err)
	}
	c.clientID = id
	return nil
}
