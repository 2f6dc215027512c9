package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/warehouse"
	"fulfillment/internal/core/ports"
)

type PackOrderResult struct {
	OrderID        kernel.UUID
	Status         warehouse.Status
	TotalVolumeCbm float64
	TotalWeightKg  float64
	// Shipment is nil when the order is not part of an active shipment or
	// when consolidation could not run; the sweep job retries the latter.
	Shipment *ShipmentPricing
}

// PackOrderCommandHandler records the packed units of a warehouse order and
// then consolidates its shipment.
//
// Packing and consolidation run in separate transactions. Once the packing
// transaction commits the operation has succeeded: capacity recalculation is
// queued and consolidation problems are only logged.
type PackOrderCommandHandler struct {
	uowFactory  ShipmentUoWFactory
	consolidate ConsolidateShipmentCommandHandler
	tasks       ports.TaskDispatcher
	logger      *slog.Logger
}

func NewPackOrderCommandHandler(
	uowFactory ShipmentUoWFactory,
	consolidate ConsolidateShipmentCommandHandler,
	tasks ports.TaskDispatcher,
	logger *slog.Logger,
) PackOrderCommandHandler {
	return PackOrderCommandHandler{
		uowFactory:  uowFactory,
		consolidate: consolidate,
		tasks:       tasks,
		logger:      logger.With("component", "pack_order"),
	}
}

func (h PackOrderCommandHandler) Handle(ctx context.Context, cmd PackOrderCommand) (PackOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return PackOrderResult{}, err
	}

	order, err := h.pack(ctx, cmd)
	if err != nil {
		return PackOrderResult{}, err
	}

	bestEffort(ctx, h.logger, h.tasks.RecalculateCapacity(ctx, order.ClientID()),
		"capacity recalculation not enqueued", "client_id", order.ClientID().String())

	result := PackOrderResult{
		OrderID:        order.ID(),
		Status:         order.Status(),
		TotalVolumeCbm: order.TotalVolumeCbm(),
		TotalWeightKg:  order.TotalWeightKg(),
	}

	consolidateCmd, err := NewConsolidateShipmentForOrderCommand(order.ID())
	if err != nil {
		return result, nil
	}
	consolidated, err := h.consolidate.Handle(ctx, consolidateCmd)
	switch {
	case errors.Is(err, ErrNoActiveShipment):
	case err != nil:
		bestEffort(ctx, h.logger, err, "consolidation after packing failed", "order_id", order.ID().String())
	default:
		result.Shipment = &consolidated.ShipmentPricing
	}

	return result, nil
}

func (h PackOrderCommandHandler) pack(ctx context.Context, cmd PackOrderCommand) (*warehouse.Order, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.WarehouseOrderRepository()

	order, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = order.Pack(cmd.Units(), cmd.Notes(), time.Now()); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, order); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return order, nil
}
