package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/subscription"
)

// SubscriptionRepository reads and updates vouchers and setup fees.
type SubscriptionRepository interface {
	GetVoucherByCode(ctx context.Context, code string) (*subscription.Voucher, error)
	UpdateVoucher(ctx context.Context, voucher *subscription.Voucher) error

	// GetPendingSetupFee returns the oldest fee not yet invoiced.
	GetPendingSetupFee(ctx context.Context, clientID kernel.UUID) (*subscription.SetupFee, error)
	UpdateSetupFee(ctx context.Context, fee *subscription.SetupFee) error
}
