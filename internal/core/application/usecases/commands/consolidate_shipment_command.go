package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrConsolidateShipmentCommandIsNotConstructed = errors.New(
	"ConsolidateShipmentCommand must be created via NewConsolidateShipmentCommand or NewConsolidateShipmentForOrderCommand",
)

// ConsolidateShipmentCommand re-evaluates the price of a shipment, addressed
// either directly or through one of its warehouse orders.
type ConsolidateShipmentCommand struct {
	shipmentID *kernel.UUID
	orderID    *kernel.UUID

	guard guard.ConstructorGuard
}

func NewConsolidateShipmentCommand(shipmentID kernel.UUID) (ConsolidateShipmentCommand, error) {
	if err := shipmentID.Validate(); err != nil {
		return ConsolidateShipmentCommand{}, errs.NewValueIsRequiredErrorWithCause("shipmentId", err)
	}
	return ConsolidateShipmentCommand{shipmentID: &shipmentID, guard: guard.NewConstructorGuard()}, nil
}

// NewConsolidateShipmentForOrderCommand addresses the active shipment that
// owns the warehouse order, if there is one.
func NewConsolidateShipmentForOrderCommand(orderID kernel.UUID) (ConsolidateShipmentCommand, error) {
	if err := orderID.Validate(); err != nil {
		return ConsolidateShipmentCommand{}, errs.NewValueIsRequiredErrorWithCause("warehouseOrderId", err)
	}
	return ConsolidateShipmentCommand{orderID: &orderID, guard: guard.NewConstructorGuard()}, nil
}

func (c ConsolidateShipmentCommand) Validate() error {
	return c.guard.Validate(ErrConsolidateShipmentCommandIsNotConstructed)
}

func (c ConsolidateShipmentCommand) ShipmentID() *kernel.UUID { return c.shipmentID }

func (c ConsolidateShipmentCommand) OrderID() *kernel.UUID { return c.orderID }
