package commands

import (
	"context"
)

// RecalculateCapacityCommandHandler stores the volume a client occupies: the
// package volume of every warehouse order not released yet. It is the
// handler behind the background capacity task and is safe to repeat.
type RecalculateCapacityCommandHandler struct {
	uowFactory CapacityUoWFactory
}

func NewRecalculateCapacityCommandHandler(uowFactory CapacityUoWFactory) RecalculateCapacityCommandHandler {
	return RecalculateCapacityCommandHandler{uowFactory: uowFactory}
}

func (h RecalculateCapacityCommandHandler) Handle(ctx context.Context, cmd RecalculateCapacityCommand) (float64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orders, err := uow.WarehouseOrderRepository().ListOccupyingByClient(ctx, cmd.ClientID())
	if err != nil {
		return 0, err
	}

	var used float64
	for _, o := range orders {
		used += o.TotalVolumeCbm()
	}

	if err = uow.ClientRepository().UpdateCapacityUsage(ctx, cmd.ClientID(), used); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}
	return used, nil
}
