package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrRecordPaymentCommandIsNotConstructed = errors.New(
	"RecordPaymentCommand must be created via NewRecordPaymentCommand constructor",
)

// RecordPaymentCommand confirms that the transport invoice of a shipment was
// paid.
type RecordPaymentCommand struct {
	shipmentID kernel.UUID

	guard guard.ConstructorGuard
}

func NewRecordPaymentCommand(shipmentID kernel.UUID) (RecordPaymentCommand, error) {
	if err := shipmentID.Validate(); err != nil {
		return RecordPaymentCommand{}, errs.NewValueIsRequiredErrorWithCause("shipmentId", err)
	}
	return RecordPaymentCommand{shipmentID: shipmentID, guard: guard.NewConstructorGuard()}, nil
}

func (c RecordPaymentCommand) Validate() error {
	return c.guard.Validate(ErrRecordPaymentCommandIsNotConstructed)
}

func (c RecordPaymentCommand) ShipmentID() kernel.UUID { return c.shipmentID }
