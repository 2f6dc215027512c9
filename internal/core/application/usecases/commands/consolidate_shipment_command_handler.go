package commands

import (
	"context"
	"errors"
	"log/slog"

	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

// ErrNoActiveShipment is returned when consolidation is requested for a
// warehouse order that is not part of an active shipment.
var ErrNoActiveShipment = errors.New("warehouse order has no active shipment")

// ConsolidateShipmentResult extends the pricing state with readiness.
type ConsolidateShipmentResult struct {
	ShipmentPricing
	// Ready is false while some member is still waiting to be packed.
	Ready bool
}

// ConsolidateShipmentCommandHandler prices a shipment once all members are
// packed. The shipment row is locked for the duration of the run; concurrent
// packing events for the same shipment queue up and then find it settled.
type ConsolidateShipmentCommandHandler struct {
	uowFactory   ShipmentUoWFactory
	rules        ports.PricingRuleSource
	consolidator services.ShipmentConsolidator
	tasks        ports.TaskDispatcher
	logger       *slog.Logger
}

func NewConsolidateShipmentCommandHandler(
	uowFactory ShipmentUoWFactory,
	rules ports.PricingRuleSource,
	tasks ports.TaskDispatcher,
	logger *slog.Logger,
) ConsolidateShipmentCommandHandler {
	return ConsolidateShipmentCommandHandler{
		uowFactory:   uowFactory,
		rules:        rules,
		consolidator: services.NewShipmentConsolidator(services.NewTransportPriceMatcher()),
		tasks:        tasks,
		logger:       logger.With("component", "consolidate_shipment"),
	}
}

func (h ConsolidateShipmentCommandHandler) Handle(
	ctx context.Context,
	cmd ConsolidateShipmentCommand,
) (ConsolidateShipmentResult, error) {
	if err := cmd.Validate(); err != nil {
		return ConsolidateShipmentResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return ConsolidateShipmentResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	shipmentRepo := uow.ShipmentRepository()

	shipmentID := cmd.ShipmentID()
	if shipmentID == nil {
		owner, err := shipmentRepo.FindActiveByWarehouseOrder(ctx, *cmd.OrderID())
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ConsolidateShipmentResult{}, ErrNoActiveShipment
		}
		if err != nil {
			return ConsolidateShipmentResult{}, err
		}
		id := owner.ID()
		shipmentID = &id
	}

	s, err := shipmentRepo.GetForUpdate(ctx, *shipmentID)
	if err != nil {
		return ConsolidateShipmentResult{}, err
	}

	members, err := uow.WarehouseOrderRepository().GetMany(ctx, s.OrderIDs())
	if err != nil {
		return ConsolidateShipmentResult{}, err
	}

	result, err := consolidate(ctx, h.consolidator, h.rules, s, members)
	if err != nil {
		return ConsolidateShipmentResult{}, err
	}

	if result.Changed {
		if err = shipmentRepo.Update(ctx, s); err != nil {
			return ConsolidateShipmentResult{}, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return ConsolidateShipmentResult{}, err
	}

	if n, ok := pricingNotification(s, result); ok {
		bestEffort(ctx, h.logger, h.tasks.Notify(ctx, n),
			"pricing notification not enqueued", "shipment_id", s.ID().String())
	}

	return ConsolidateShipmentResult{ShipmentPricing: pricingOf(s), Ready: result.Ready}, nil
}
