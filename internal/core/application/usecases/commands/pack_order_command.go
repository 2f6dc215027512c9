package commands

import (
	"errors"
	"strings"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/warehouse"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrPackOrderCommandIsNotConstructed = errors.New(
	"PackOrderCommand must be created via NewPackOrderCommand constructor",
)

// PackOrderCommand reports the packed units of a warehouse order. Unit
// validation happens in the domain so that the whole list is checked at once.
type PackOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	units   []warehouse.Unit
	notes   string

	guard guard.ConstructorGuard
}

func NewPackOrderCommand(orderID kernel.UUID, units []warehouse.Unit, notes string) (PackOrderCommand, error) {
	cmd := PackOrderCommand{
		notes: strings.TrimSpace(notes),
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(cmd.setOrderID(orderID), cmd.setUnits(units)); err != nil {
		return PackOrderCommand{}, err
	}
	return cmd, nil
}

func (c PackOrderCommand) Validate() error {
	return c.guard.Validate(ErrPackOrderCommandIsNotConstructed)
}

func (c PackOrderCommand) OrderID() kernel.UUID { return c.orderID }

func (c PackOrderCommand) Units() []warehouse.Unit { return c.units }

func (c PackOrderCommand) Notes() string { return c.notes }

func (c *PackOrderCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("orderId", err)
	}
	c.orderID = id
	return nil
}

func (c *PackOrderCommand) setUnits(units []warehouse.Unit) error {
	if len(units) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	c.units = append([]warehouse.Unit(nil), units...)
	return nil
}
