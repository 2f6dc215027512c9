package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

// ClientRepository covers the few client attributes the engine reads or
// maintains. Client accounts themselves are managed elsewhere.
type ClientRepository interface {
	// DiscountPercent is zero for clients without a negotiated discount.
	DiscountPercent(ctx context.Context, clientID kernel.UUID) (decimal.Decimal, error)

	// UpdateCapacityUsage stores the used warehouse volume, creating the
	// client row when it does not exist yet.
	UpdateCapacityUsage(ctx context.Context, clientID kernel.UUID, usedCbm float64) error
}
