package commands

import (
	"errors"
	"strings"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrReleaseShipmentCommandIsNotConstructed = errors.New(
	"ReleaseShipmentCommand must be created via NewReleaseShipmentCommand constructor",
)

// ReleaseShipmentCommand hands the goods of a shipment to the pickup vehicle.
// The presented registration is what the warehouse reads off the vehicle.
type ReleaseShipmentCommand struct {
	shipmentID            kernel.UUID
	presentedRegistration string

	guard guard.ConstructorGuard
}

func NewReleaseShipmentCommand(shipmentID kernel.UUID, presentedRegistration string) (ReleaseShipmentCommand, error) {
	if err := shipmentID.Validate(); err != nil {
		return ReleaseShipmentCommand{}, errs.NewValueIsRequiredErrorWithCause("shipmentId", err)
	}
	return ReleaseShipmentCommand{
		shipmentID:            shipmentID,
		presentedRegistration: strings.TrimSpace(presentedRegistration),
		guard:                 guard.NewConstructorGuard(),
	}, nil
}

func (c ReleaseShipmentCommand) Validate() error {
	return c.guard.Validate(ErrReleaseShipmentCommandIsNotConstructed)
}

func (c ReleaseShipmentCommand) ShipmentID() kernel.UUID { return c.shipmentID }

func (c ReleaseShipmentCommand) PresentedRegistration() string { return c.presentedRegistration }
