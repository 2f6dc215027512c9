package commands

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrCreateExpectedDeliveryCommandIsNotConstructed = errors.New(
	"CreateExpectedDeliveryCommand must be created via NewCreateExpectedDeliveryCommand constructor",
)

// CreateExpectedDeliveryCommand announces goods a supplier will bring in for
// a client.
type CreateExpectedDeliveryCommand struct { //nolint:recvcheck //using for validation
	deliveryID   kernel.UUID
	clientID     kernel.UUID
	supplierName string
	expectedAt   *time.Time

	guard guard.ConstructorGuard
}

func NewCreateExpectedDeliveryCommand(
	deliveryID, clientID kernel.UUID,
	supplierName string,
	expectedAt *time.Time,
) (CreateExpectedDeliveryCommand, error) {
	cmd := CreateExpectedDeliveryCommand{
		supplierName: supplierName,
		expectedAt:   expectedAt,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDeliveryID(deliveryID),
		cmd.setClientID(clientID),
	); err != nil {
		return CreateExpectedDeliveryCommand{}, err
	}

	return cmd, nil
}

func (c CreateExpectedDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrCreateExpectedDeliveryCommandIsNotConstructed)
}

func (c CreateExpectedDeliveryCommand) DeliveryID() kernel.UUID { return c.deliveryID }

func (c CreateExpectedDeliveryCommand) ClientID() kernel.UUID { return c.clientID }

func (c CreateExpectedDeliveryCommand) SupplierName() string { return c.supplierName }

func (c CreateExpectedDeliveryCommand) ExpectedAt() *time.Time { return c.expectedAt }

func (c *CreateExpectedDeliveryCommand) setDeliveryID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("deliveryId", err)
	}
	c.deliveryID = id
	return nil
}

func (c *CreateExpectedDeliveryCommand) setClientID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("clientId", err)
	}
	c.clientID = id
	return nil
}
