package commands

import (
	"context"
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/invoice"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/subscription"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/pkg/errs"
)

type IssueSubscriptionInvoiceResult struct {
	InvoiceID kernel.UUID
	Quote     services.SubscriptionQuote
}

// IssueSubscriptionInvoiceCommandHandler prices a subscription period and
// writes the invoice. A valid voucher is redeemed for the client and a
// pending setup fee is marked invoiced in the same transaction.
type IssueSubscriptionInvoiceCommandHandler struct {
	uowFactory BillingUoWFactory
	calculator services.SubscriptionPriceCalculator
}

func NewIssueSubscriptionInvoiceCommandHandler(uowFactory BillingUoWFactory) IssueSubscriptionInvoiceCommandHandler {
	return IssueSubscriptionInvoiceCommandHandler{
		uowFactory: uowFactory,
		calculator: services.NewSubscriptionPriceCalculator(),
	}
}

func (h IssueSubscriptionInvoiceCommandHandler) Handle(
	ctx context.Context,
	cmd IssueSubscriptionInvoiceCommand,
) (IssueSubscriptionInvoiceResult, error) {
	if err := cmd.Validate(); err != nil {
		return IssueSubscriptionInvoiceResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return IssueSubscriptionInvoiceResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	subscriptionRepo := uow.SubscriptionRepository()
	now := time.Now()

	discount, err := uow.ClientRepository().DiscountPercent(ctx, cmd.ClientID())
	if err != nil {
		return IssueSubscriptionInvoiceResult{}, err
	}

	fee, err := optional(subscriptionRepo.GetPendingSetupFee(ctx, cmd.ClientID()))
	if err != nil {
		return IssueSubscriptionInvoiceResult{}, err
	}

	var voucher *subscription.Voucher
	if cmd.VoucherCode() != "" {
		if voucher, err = optional(subscriptionRepo.GetVoucherByCode(ctx, cmd.VoucherCode())); err != nil {
			return IssueSubscriptionInvoiceResult{}, err
		}
	}

	in := services.SubscriptionInput{
		Plan:            cmd.Plan(),
		Period:          cmd.Period(),
		DiscountPercent: discount,
		Voucher:         voucher,
		Now:             now,
	}
	if fee != nil {
		in.SetupFeeEur = fee.AmountEur()
	}

	quote, err := h.calculator.Calculate(in)
	if err != nil {
		return IssueSubscriptionInvoiceResult{}, err
	}

	inv, err := invoice.NewSubscriptionInvoice(kernel.NewUUID(), cmd.ClientID(), quote.TotalEur.Round(2), now)
	if err != nil {
		return IssueSubscriptionInvoiceResult{}, err
	}
	if err = uow.InvoiceRepository().Add(ctx, inv); err != nil {
		return IssueSubscriptionInvoiceResult{}, err
	}

	if quote.VoucherApplied {
		if err = voucher.Redeem(cmd.ClientID(), now); err != nil {
			return IssueSubscriptionInvoiceResult{}, err
		}
		if err = subscriptionRepo.UpdateVoucher(ctx, voucher); err != nil {
			return IssueSubscriptionInvoiceResult{}, err
		}
	}

	if fee != nil {
		fee.MarkInvoiced(now)
		if err = subscriptionRepo.UpdateSetupFee(ctx, fee); err != nil {
			return IssueSubscriptionInvoiceResult{}, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return IssueSubscriptionInvoiceResult{}, err
	}

	return IssueSubscriptionInvoiceResult{InvoiceID: inv.ID(), Quote: quote}, nil
}

// optional turns a not-found lookup into a nil result.
func optional[T any](v *T, err error) (*T, error) {
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, nil
	}
	return v, err
}
