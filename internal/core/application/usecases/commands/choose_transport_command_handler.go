package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"fulfillment/internal/core/domain/model/invoice"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/shipment"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

type ChooseTransportResult struct {
	ShipmentID    kernel.UUID
	Status        shipment.Status
	Choice        shipment.Choice
	PaymentMethod shipment.PaymentMethod
	InvoiceID     *kernel.UUID
}

// ChooseTransportCommandHandler applies ACCEPT, REQUEST_CUSTOM or
// OWN_TRANSPORT under a row lock on the shipment. An acceptance creates the
// transport invoice in the same transaction, so a repeated ACCEPT finds the
// invoice attached and creates nothing.
type ChooseTransportCommandHandler struct {
	uowFactory ShipmentUoWFactory
	resolver   services.TransportChoiceResolver
	tasks      ports.TaskDispatcher
	logger     *slog.Logger
}

func NewChooseTransportCommandHandler(
	uowFactory ShipmentUoWFactory,
	tasks ports.TaskDispatcher,
	logger *slog.Logger,
) ChooseTransportCommandHandler {
	return ChooseTransportCommandHandler{
		uowFactory: uowFactory,
		resolver:   services.NewTransportChoiceResolver(),
		tasks:      tasks,
		logger:     logger.With("component", "choose_transport"),
	}
}

func (h ChooseTransportCommandHandler) Handle(ctx context.Context, cmd ChooseTransportCommand) (ChooseTransportResult, error) {
	if err := cmd.Validate(); err != nil {
		return ChooseTransportResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return ChooseTransportResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	shipmentRepo := uow.ShipmentRepository()

	s, err := shipmentRepo.GetForUpdate(ctx, cmd.ShipmentID())
	if err != nil {
		return ChooseTransportResult{}, err
	}

	// A priced shipment has all members packed; otherwise look at them.
	dominant := s.DominantType()
	membersPacked := s.IsPriced()
	if dominant == kernel.UnknownTransportType || !membersPacked {
		members, membersErr := uow.WarehouseOrderRepository().GetMany(ctx, s.OrderIDs())
		if membersErr != nil {
			return ChooseTransportResult{}, membersErr
		}
		if dominant == kernel.UnknownTransportType {
			dominant = services.AggregateMembers(members).TransportType
		}
		membersPacked = services.MembersReady(members)
	}

	outcome, err := h.resolver.Resolve(s, dominant, services.ChoiceRequest{
		Choice:        cmd.Choice(),
		PaymentMethod: cmd.PaymentMethod(),
		OwnTransport:  cmd.OwnTransport(),
		MembersPacked: membersPacked,
	})
	if err != nil {
		return ChooseTransportResult{}, err
	}

	var issued *invoice.Invoice
	if outcome.IssueInvoice {
		issued, err = h.issueInvoice(ctx, uow.InvoiceRepository(), s)
		if err != nil {
			return ChooseTransportResult{}, err
		}
	}

	if outcome.Changed || issued != nil {
		if err = shipmentRepo.Update(ctx, s); err != nil {
			return ChooseTransportResult{}, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return ChooseTransportResult{}, err
	}

	h.afterCommit(ctx, s, outcome, issued)

	return ChooseTransportResult{
		ShipmentID:    s.ID(),
		Status:        s.Status(),
		Choice:        s.Choice(),
		PaymentMethod: s.PaymentMethod(),
		InvoiceID:     s.InvoiceID(),
	}, nil
}

func (h ChooseTransportCommandHandler) issueInvoice(
	ctx context.Context,
	repo ports.InvoiceRepository,
	s *shipment.Shipment,
) (*invoice.Invoice, error) {
	if s.PriceEur() == nil {
		return nil, errs.NewStateConflictError("shipment", "unpriced", "be invoiced")
	}

	inv, err := invoice.NewTransportInvoice(kernel.NewUUID(), s.ClientID(), s.ID(), *s.PriceEur(), time.Now())
	if err != nil {
		return nil, err
	}

	if err = repo.Add(ctx, inv); err != nil {
		if errors.Is(err, ports.ErrInvoiceAlreadyExists) {
			return nil, errs.NewStateConflictError("shipment", s.Status().String(), "be invoiced twice")
		}
		return nil, err
	}

	if err = s.AttachInvoice(inv.ID()); err != nil {
		return nil, err
	}
	return inv, nil
}

func (h ChooseTransportCommandHandler) afterCommit(
	ctx context.Context,
	s *shipment.Shipment,
	outcome services.ChoiceOutcome,
	issued *invoice.Invoice,
) {
	if outcome.RequestPaymentLink && issued != nil {
		bestEffort(ctx, h.logger, h.tasks.RequestPaymentLink(ctx, ports.PaymentLinkRequest{
			InvoiceID:  issued.ID(),
			ShipmentID: s.ID(),
			ClientID:   s.ClientID(),
			AmountEur:  issued.AmountEur(),
		}), "payment link not enqueued", "shipment_id", s.ID().String())
	}

	if outcome.NotifySales {
		bestEffort(ctx, h.logger, h.tasks.Notify(ctx, ports.Notification{
			Kind:     ports.NotificationCustomQuoteRequested,
			ClientID: s.ClientID(),
			EntityID: s.ID(),
		}), "custom quote notification not enqueued", "shipment_id", s.ID().String())
	}

	if outcome.Changed && s.Status() == shipment.ReadyForLoading {
		bestEffort(ctx, h.logger, h.tasks.Notify(ctx, ports.Notification{
			Kind:     ports.NotificationShipmentReadyToLoad,
			ClientID: s.ClientID(),
			EntityID: s.ID(),
			Fields:   map[string]string{"choice": s.Choice().String()},
		}), "loading notification not enqueued", "shipment_id", s.ID().String())
	}
}
