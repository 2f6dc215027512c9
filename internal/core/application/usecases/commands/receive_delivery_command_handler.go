package commands

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"fulfillment/internal/core/domain/model/delivery"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/warehouse"
	"fulfillment/internal/core/ports"
)

type ReceiveDeliveryResult struct {
	WarehouseOrderID kernel.UUID
	TrackingNumber   string
	DeliveryNumber   int64
	DeliveryStatus   delivery.Status
}

// ReceiveDeliveryCommandHandler moves a delivery from EXPECTED to RECEIVED and
// creates the warehouse order holding the goods, in one transaction.
type ReceiveDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
	tasks      ports.TaskDispatcher
	logger     *slog.Logger
}

func NewReceiveDeliveryCommandHandler(
	uowFactory DeliveryUoWFactory,
	tasks ports.TaskDispatcher,
	logger *slog.Logger,
) ReceiveDeliveryCommandHandler {
	return ReceiveDeliveryCommandHandler{
		uowFactory: uowFactory,
		tasks:      tasks,
		logger:     logger.With("component", "receive_delivery"),
	}
}

func (h ReceiveDeliveryCommandHandler) Handle(ctx context.Context, cmd ReceiveDeliveryCommand) (ReceiveDeliveryResult, error) {
	if err := cmd.Validate(); err != nil {
		return ReceiveDeliveryResult{}, err
	}

	var packages []*warehouse.Package
	if len(cmd.Units()) > 0 {
		built, err := warehouse.BuildPackages(cmd.Units())
		if err != nil {
			return ReceiveDeliveryResult{}, err
		}
		packages = built
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return ReceiveDeliveryResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	deliveryRepo := uow.DeliveryRepository()
	orderRepo := uow.WarehouseOrderRepository()

	d, err := deliveryRepo.GetForUpdate(ctx, cmd.DeliveryID())
	if err != nil {
		return ReceiveDeliveryResult{}, err
	}

	// refuse before drawing a number
	if _, err = d.Status().Receive(); err != nil {
		return ReceiveDeliveryResult{}, err
	}

	number, err := deliveryRepo.NextDeliveryNumber(ctx)
	if err != nil {
		return ReceiveDeliveryResult{}, err
	}

	if err = d.Receive(number, cmd.Condition(), time.Now()); err != nil {
		return ReceiveDeliveryResult{}, err
	}

	order, err := warehouse.NewReceivedOrder(cmd.WarehouseOrderID(), d.ClientID(), d.ID(), cmd.Location(), packages)
	if err != nil {
		return ReceiveDeliveryResult{}, err
	}

	if err = deliveryRepo.Update(ctx, d); err != nil {
		return ReceiveDeliveryResult{}, err
	}

	if err = orderRepo.Add(ctx, order); err != nil {
		return ReceiveDeliveryResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return ReceiveDeliveryResult{}, err
	}

	bestEffort(ctx, h.logger, h.tasks.RecalculateCapacity(ctx, d.ClientID()),
		"capacity recalculation not enqueued", "client_id", d.ClientID().String())
	bestEffort(ctx, h.logger, h.tasks.Notify(ctx, ports.Notification{
		Kind:     ports.NotificationDeliveryReceived,
		ClientID: d.ClientID(),
		EntityID: d.ID(),
		Fields: map[string]string{
			"deliveryNumber": strconv.FormatInt(number, 10),
			"trackingNumber": order.TrackingNumber(),
			"condition":      cmd.Condition().String(),
		},
	}), "delivery notification not enqueued", "delivery_id", d.ID().String())

	return ReceiveDeliveryResult{
		WarehouseOrderID: order.ID(),
		TrackingNumber:   order.TrackingNumber(),
		DeliveryNumber:   number,
		DeliveryStatus:   d.Status(),
	}, nil
}
