package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"fulfillment/internal/core/domain/model/shipment"
	"fulfillment/internal/core/domain/model/warehouse"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

// CreateShipmentCommandHandler groups warehouse orders into a shipment. Members
// that were only stored move to TO_PACK; when every member is already packed
// the shipment is priced right away.
type CreateShipmentCommandHandler struct {
	uowFactory   ShipmentUoWFactory
	rules        ports.PricingRuleSource
	consolidator services.ShipmentConsolidator
	tasks        ports.TaskDispatcher
	logger       *slog.Logger
}

func NewCreateShipmentCommandHandler(
	uowFactory ShipmentUoWFactory,
	rules ports.PricingRuleSource,
	tasks ports.TaskDispatcher,
	logger *slog.Logger,
) CreateShipmentCommandHandler {
	return CreateShipmentCommandHandler{
		uowFactory:   uowFactory,
		rules:        rules,
		consolidator: services.NewShipmentConsolidator(services.NewTransportPriceMatcher()),
		tasks:        tasks,
		logger:       logger.With("component", "create_shipment"),
	}
}

func (h CreateShipmentCommandHandler) Handle(ctx context.Context, cmd CreateShipmentCommand) (ShipmentPricing, error) {
	if err := cmd.Validate(); err != nil {
		return ShipmentPricing{}, err
	}

	s, err := shipment.NewShipment(cmd.ShipmentID(), cmd.ClientID(), cmd.OrderIDs())
	if err != nil {
		return ShipmentPricing{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return ShipmentPricing{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.WarehouseOrderRepository()
	shipmentRepo := uow.ShipmentRepository()

	members, err := orderRepo.GetMany(ctx, s.OrderIDs())
	if err != nil {
		return ShipmentPricing{}, err
	}

	for _, o := range members {
		if !o.ClientID().IsEqual(cmd.ClientID()) {
			return ShipmentPricing{}, errs.NewObjectNotFoundError("warehouseOrderId", o.ID().String())
		}

		_, err = shipmentRepo.FindActiveByWarehouseOrder(ctx, o.ID())
		switch {
		case err == nil:
			return ShipmentPricing{}, errs.NewValueIsInvalidErrorWithCause(
				"warehouseOrderIds", fmt.Errorf("%s already belongs to an active shipment", o.ID()))
		case !errors.Is(err, errs.ErrObjectNotFound):
			return ShipmentPricing{}, err
		}

		switch o.Status() {
		case warehouse.AtWarehouse:
			if err = o.RequestPacking(); err != nil {
				return ShipmentPricing{}, err
			}
			if err = orderRepo.Update(ctx, o); err != nil {
				return ShipmentPricing{}, err
			}
		case warehouse.ToPack, warehouse.ReadyToShip:
		case warehouse.Unknown, warehouse.Released:
			return ShipmentPricing{}, errs.NewStateConflictError("warehouse order", o.Status().String(), "join a shipment")
		}
	}

	result, err := consolidate(ctx, h.consolidator, h.rules, s, members)
	if err != nil {
		return ShipmentPricing{}, err
	}

	if err = shipmentRepo.Add(ctx, s); err != nil {
		return ShipmentPricing{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return ShipmentPricing{}, err
	}

	if n, ok := pricingNotification(s, result); ok {
		bestEffort(ctx, h.logger, h.tasks.Notify(ctx, n),
			"pricing notification not enqueued", "shipment_id", s.ID().String())
	}

	return pricingOf(s), nil
}
