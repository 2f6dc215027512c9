package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/warehouse"
)

// RegisterCollectedOrderCommandHandler creates a warehouse order in TO_PACK.
type RegisterCollectedOrderCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

func NewRegisterCollectedOrderCommandHandler(uowFactory DeliveryUoWFactory) RegisterCollectedOrderCommandHandler {
	return RegisterCollectedOrderCommandHandler{uowFactory: uowFactory}
}

func (h RegisterCollectedOrderCommandHandler) Handle(ctx context.Context, cmd RegisterCollectedOrderCommand) (string, error) {
	if err := cmd.Validate(); err != nil {
		return "", err
	}

	order, err := warehouse.NewCollectedOrder(cmd.OrderID(), cmd.ClientID(), cmd.Location())
	if err != nil {
		return "", err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return "", err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.WarehouseOrderRepository().Add(ctx, order); err != nil {
		return "", err
	}

	if err = uow.Commit(ctx); err != nil {
		return "", err
	}

	return order.TrackingNumber(), nil
}
