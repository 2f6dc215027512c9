// Package subscription holds the recurring billing vocabulary: plans, billing
// periods, vouchers and one-off setup fees. The amount itself is computed by
// services.SubscriptionPriceCalculator.
package subscription
