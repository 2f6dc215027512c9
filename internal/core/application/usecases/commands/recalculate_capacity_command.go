package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrRecalculateCapacityCommandIsNotConstructed = errors.New(
	"RecalculateCapacityCommand must be created via NewRecalculateCapacityCommand constructor",
)

type RecalculateCapacityCommand struct {
	clientID kernel.UUID

	guard guard.ConstructorGuard
}

func NewRecalculateCapacityCommand(clientID kernel.UUID) (RecalculateCapacityCommand, error) {
	if err := clientID.Validate(); err != nil {
		return RecalculateCapacityCommand{}, errs.NewValueIsRequiredErrorWithCause("clientId", err)
	}
	return RecalculateCapacityCommand{clientID: clientID, guard: guard.NewConstructorGuard()}, nil
}

func (c RecalculateCapacityCommand) Validate() error {
	return c.guard.Validate(ErrRecalculateCapacityCommandIsNotConstructed)
}

func (c RecalculateCapacityCommand) ClientID() kernel.UUID { return c.clientID }
