package commands

import (
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrCreateShipmentCommandIsNotConstructed = errors.New(
	"CreateShipmentCommand must be created via NewCreateShipmentCommand constructor",
)

// CreateShipmentCommand asks to ship warehouse orders of one client together.
type CreateShipmentCommand struct { //nolint:recvcheck //using for validation
	shipmentID kernel.UUID
	clientID   kernel.UUID
	orderIDs   []kernel.UUID

	guard guard.ConstructorGuard
}

func NewCreateShipmentCommand(shipmentID, clientID kernel.UUID, orderIDs []kernel.UUID) (CreateShipmentCommand, error) {
	cmd := CreateShipmentCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		cmd.setShipmentID(shipmentID),
		cmd.setClientID(clientID),
		cmd.setOrderIDs(orderIDs),
	); err != nil {
		return CreateShipmentCommand{}, err
	}
	return cmd, nil
}

func (c CreateShipmentCommand) Validate() error {
	return c.guard.Validate(ErrCreateShipmentCommandIsNotConstructed)
}

func (c CreateShipmentCommand) ShipmentID() kernel.UUID { return c.shipmentID }

func (c CreateShipmentCommand) ClientID() kernel.UUID { return c.clientID }

func (c CreateShipmentCommand) OrderIDs() []kernel.UUID {
	return append([]kernel.UUID(nil), c.orderIDs...)
}

func (c *CreateShipmentCommand) setShipmentID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("shipmentId", err)
	}
	c.shipmentID = id
	return nil
}

func (c *CreateShipmentCommand) setClientID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("clientId", err)
	}
	c.clientID = id
	return nil
}

func (c *CreateShipmentCommand) setOrderIDs(ids []kernel.UUID) error {
	if len(ids) == 0 {
		return errs.NewValueIsRequiredError("warehouseOrderIds")
	}
	for i, id := range ids {
		if err := id.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause("warehouseOrderIds", fmt.Errorf("[%d]: %w", i, err))
		}
	}
	c.orderIDs = append([]kernel.UUID(nil), ids...)
	return nil
}
