package commands

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/shipment"
)

// RecordPaymentCommandHandler moves AWAITING_PAYMENT to READY_FOR_LOADING and
// marks the invoice paid. Duplicate payment callbacks are no-ops.
type RecordPaymentCommandHandler struct {
	uowFactory ShipmentUoWFactory
}

func NewRecordPaymentCommandHandler(uowFactory ShipmentUoWFactory) RecordPaymentCommandHandler {
	return RecordPaymentCommandHandler{uowFactory: uowFactory}
}

func (h RecordPaymentCommandHandler) Handle(ctx context.Context, cmd RecordPaymentCommand) (shipment.Status, error) {
	if err := cmd.Validate(); err != nil {
		return shipment.Unknown, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return shipment.Unknown, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	shipmentRepo := uow.ShipmentRepository()
	invoiceRepo := uow.InvoiceRepository()

	s, err := shipmentRepo.GetForUpdate(ctx, cmd.ShipmentID())
	if err != nil {
		return shipment.Unknown, err
	}

	changed, err := s.MarkPaid()
	if err != nil {
		return shipment.Unknown, err
	}
	if !changed {
		return s.Status(), nil
	}

	if err = shipmentRepo.Update(ctx, s); err != nil {
		return shipment.Unknown, err
	}

	if id := s.InvoiceID(); id != nil {
		inv, getErr := invoiceRepo.Get(ctx, *id)
		if getErr != nil {
			return shipment.Unknown, getErr
		}
		if inv.MarkPaid(time.Now()) {
			if err = invoiceRepo.Update(ctx, inv); err != nil {
				return shipment.Unknown, err
			}
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return shipment.Unknown, err
	}

	return s.Status(), nil
}
