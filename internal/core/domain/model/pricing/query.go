package pricing

import (
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

// Query is the aggregate a shipment is priced on.
type Query struct {
	TransportType kernel.TransportType
	WeightKg      float64
	VolumeCbm     float64
	PalletCount   int
	PackageCount  int
}

// Quote is the outcome of a successful match.
type Quote struct {
	RuleID   kernel.UUID
	PriceEur decimal.Decimal
}
