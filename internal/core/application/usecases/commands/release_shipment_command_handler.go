package commands

import (
	"context"
	"log/slog"

	"fulfillment/internal/core/ports"
)

// ReleaseShipmentCommandHandler releases a shipment ready for loading together
// with all of its warehouse orders. The freed space is recalculated in the
// background.
type ReleaseShipmentCommandHandler struct {
	uowFactory ShipmentUoWFactory
	tasks      ports.TaskDispatcher
	logger     *slog.Logger
}

func NewReleaseShipmentCommandHandler(
	uowFactory ShipmentUoWFactory,
	tasks ports.TaskDispatcher,
	logger *slog.Logger,
) ReleaseShipmentCommandHandler {
	return ReleaseShipmentCommandHandler{
		uowFactory: uowFactory,
		tasks:      tasks,
		logger:     logger.With("component", "release_shipment"),
	}
}

func (h ReleaseShipmentCommandHandler) Handle(ctx context.Context, cmd ReleaseShipmentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	shipmentRepo := uow.ShipmentRepository()
	orderRepo := uow.WarehouseOrderRepository()

	s, err := shipmentRepo.GetForUpdate(ctx, cmd.ShipmentID())
	if err != nil {
		return err
	}

	members, err := orderRepo.GetMany(ctx, s.OrderIDs())
	if err != nil {
		return err
	}

	if err = s.Release(cmd.PresentedRegistration()); err != nil {
		return err
	}

	for _, o := range members {
		if err = o.Release(); err != nil {
			return err
		}
		if err = orderRepo.Update(ctx, o); err != nil {
			return err
		}
	}

	if err = shipmentRepo.Update(ctx, s); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	bestEffort(ctx, h.logger, h.tasks.RecalculateCapacity(ctx, s.ClientID()),
		"capacity recalculation not enqueued", "client_id", s.ClientID().String())
	return nil
}
