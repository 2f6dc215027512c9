package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/delivery"
)

type CreateExpectedDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

func NewCreateExpectedDeliveryCommandHandler(uowFactory DeliveryUoWFactory) CreateExpectedDeliveryCommandHandler {
	return CreateExpectedDeliveryCommandHandler{uowFactory: uowFactory}
}

// Handle stores a new delivery in EXPECTED.
func (h CreateExpectedDeliveryCommandHandler) Handle(ctx context.Context, cmd CreateExpectedDeliveryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	d, err := delivery.NewDelivery(cmd.DeliveryID(), cmd.ClientID(), cmd.SupplierName(), cmd.ExpectedAt())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.DeliveryRepository().Add(ctx, d); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
