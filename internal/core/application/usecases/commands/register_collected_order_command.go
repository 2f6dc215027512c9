package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrRegisterCollectedOrderCommandIsNotConstructed = errors.New(
	"RegisterCollectedOrderCommand must be created via NewRegisterCollectedOrderCommand constructor",
)

// RegisterCollectedOrderCommand books goods picked up locally, without an
// announced delivery.
type RegisterCollectedOrderCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	clientID kernel.UUID
	location *kernel.Location

	guard guard.ConstructorGuard
}

func NewRegisterCollectedOrderCommand(
	orderID, clientID kernel.UUID,
	location *kernel.Location,
) (RegisterCollectedOrderCommand, error) {
	cmd := RegisterCollectedOrderCommand{location: location, guard: guard.NewConstructorGuard()}

	if err := errors.Join(cmd.setOrderID(orderID), cmd.setClientID(clientID)); err != nil {
		return RegisterCollectedOrderCommand{}, err
	}
	return cmd, nil
}

func (c RegisterCollectedOrderCommand) Validate() error {
	return c.guard.Validate(ErrRegisterCollectedOrderCommandIsNotConstructed)
}

func (c RegisterCollectedOrderCommand) OrderID() kernel.UUID { return c.orderID }

func (c RegisterCollectedOrderCommand) ClientID() kernel.UUID { return c.clientID }

func (c RegisterCollectedOrderCommand) Location() *kernel.Location { return c.location }

func (c *RegisterCollectedOrderCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("warehouseOrderId", err)
	}
	c.orderID = id
	return nil
}

func (c *RegisterCollectedOrderCommand) setClientID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("clientId", err)
	}
	c.clientID = id
	return nil
}
