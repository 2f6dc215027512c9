package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/shipment"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrChooseTransportCommandIsNotConstructed = errors.New(
	"ChooseTransportCommand must be created via NewChooseTransportCommand constructor",
)

// ChooseTransportCommand carries the client's reaction to a quote.
// OwnTransport details are optional and only read for OWN_TRANSPORT.
type ChooseTransportCommand struct { //nolint:recvcheck //using for validation
	shipmentID    kernel.UUID
	choice        shipment.Choice
	paymentMethod shipment.PaymentMethod
	ownTransport  *shipment.OwnTransportDetails

	guard guard.ConstructorGuard
}

func NewChooseTransportCommand(
	shipmentID kernel.UUID,
	choice shipment.Choice,
	paymentMethod shipment.PaymentMethod,
	ownTransport *shipment.OwnTransportDetails,
) (ChooseTransportCommand, error) {
	cmd := ChooseTransportCommand{
		paymentMethod: paymentMethod,
		ownTransport:  ownTransport,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(cmd.setShipmentID(shipmentID), cmd.setChoice(choice)); err != nil {
		return ChooseTransportCommand{}, err
	}
	return cmd, nil
}

func (c ChooseTransportCommand) Validate() error {
	return c.guard.Validate(ErrChooseTransportCommandIsNotConstructed)
}

func (c ChooseTransportCommand) ShipmentID() kernel.UUID { return c.shipmentID }

func (c ChooseTransportCommand) Choice() shipment.Choice { return c.choice }

func (c ChooseTransportCommand) PaymentMethod() shipment.PaymentMethod { return c.paymentMethod }

func (c ChooseTransportCommand) OwnTransport() *shipment.OwnTransportDetails { return c.ownTransport }

func (c *ChooseTransportCommand) setShipmentID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("shipmentId", err)
	}
	c.shipmentID = id
	return nil
}

func (c *ChooseTransportCommand) setChoice(choice shipment.Choice) error {
	if choice == shipment.NoChoice {
		return errs.NewValueIsRequiredError("transportChoice")
	}
	c.choice = choice
	return nil
}
