package queries

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrGetClientWarehouseOrdersQueryIsNotConstructed = errors.New(
	"GetClientWarehouseOrdersQuery must be created via NewGetClientWarehouseOrdersQuery constructor",
)

// GetClientWarehouseOrdersQuery lists a client's warehouse orders, newest
// first. Released orders are included only on request.
type GetClientWarehouseOrdersQuery struct {
	clientID        kernel.UUID
	includeReleased bool

	guard guard.ConstructorGuard
}

func NewGetClientWarehouseOrdersQuery(clientID kernel.UUID, includeReleased bool) (GetClientWarehouseOrdersQuery, error) {
	if err := clientID.Validate(); err != nil {
		return GetClientWarehouseOrdersQuery{}, errs.NewValueIsRequiredErrorWithCause("clientId", err)
	}
	return GetClientWarehouseOrdersQuery{
		clientID:        clientID,
		includeReleased: includeReleased,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

func (q GetClientWarehouseOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetClientWarehouseOrdersQueryIsNotConstructed)
}

type WarehouseOrderView struct {
	ID               kernel.UUID
	TrackingNumber   string
	Status           string
	Location         string
	SourceDeliveryID *kernel.UUID
	PackageCount     int
	VolumeCbm        float64
	WeightKg         float64
	PackedAt         *time.Time
	CreatedAt        time.Time
}
