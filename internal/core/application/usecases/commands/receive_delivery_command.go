package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/delivery"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/warehouse"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrReceiveDeliveryCommandIsNotConstructed = errors.New(
	"ReceiveDeliveryCommand must be created via NewReceiveDeliveryCommand constructor",
)

// ReceiveDeliveryCommand books an expected delivery into the warehouse. Units
// are optional: the warehouse may measure the goods only when packing.
type ReceiveDeliveryCommand struct { //nolint:recvcheck //using for validation
	deliveryID       kernel.UUID
	warehouseOrderID kernel.UUID
	condition        delivery.Condition
	location         *kernel.Location
	units            []warehouse.Unit

	guard guard.ConstructorGuard
}

func NewReceiveDeliveryCommand(
	deliveryID, warehouseOrderID kernel.UUID,
	condition delivery.Condition,
	location *kernel.Location,
	units []warehouse.Unit,
) (ReceiveDeliveryCommand, error) {
	cmd := ReceiveDeliveryCommand{
		location: location,
		units:    append([]warehouse.Unit(nil), units...),
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDeliveryID(deliveryID),
		cmd.setWarehouseOrderID(warehouseOrderID),
		cmd.setCondition(condition),
	); err != nil {
		return ReceiveDeliveryCommand{}, err
	}

	return cmd, nil
}

func (c ReceiveDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrReceiveDeliveryCommandIsNotConstructed)
}

func (c ReceiveDeliveryCommand) DeliveryID() kernel.UUID { return c.deliveryID }

func (c ReceiveDeliveryCommand) WarehouseOrderID() kernel.UUID { return c.warehouseOrderID }

func (c ReceiveDeliveryCommand) Condition() delivery.Condition { return c.condition }

func (c ReceiveDeliveryCommand) Location() *kernel.Location { return c.location }

func (c ReceiveDeliveryCommand) Units() []warehouse.Unit { return c.units }

func (c *ReceiveDeliveryCommand) setDeliveryID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("deliveryId", err)
	}
	c.deliveryID = id
	return nil
}

func (c *ReceiveDeliveryCommand) setWarehouseOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("warehouseOrderId", err)
	}
	c.warehouseOrderID = id
	return nil
}

func (c *ReceiveDeliveryCommand) setCondition(condition delivery.Condition) error {
	if err := condition.Validate(); err != nil {
		return err
	}
	c.condition = condition
	return nil
}
