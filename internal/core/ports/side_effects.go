package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

// TaskDispatcher hands best-effort work to the background queue. Callers log
// a failed enqueue and carry on.
type TaskDispatcher interface {
	RecalculateCapacity(ctx context.Context, clientID kernel.UUID) error
	Notify(ctx context.Context, n Notification) error
	RequestPaymentLink(ctx context.Context, req PaymentLinkRequest) error
}

type NotificationKind string

const (
	NotificationDeliveryReceived     NotificationKind = "delivery_received"
	NotificationShipmentPriced       NotificationKind = "shipment_priced"
	NotificationManualQuoteNeeded    NotificationKind = "manual_quote_needed"
	NotificationCustomQuoteRequested NotificationKind = "custom_quote_requested"
	NotificationShipmentReadyToLoad  NotificationKind = "shipment_ready_for_loading"
	NotificationPaymentLinkCreated   NotificationKind = "payment_link_created"
)

// Notification is an outbound message about one entity.
type Notification struct {
	Kind     NotificationKind
	ClientID kernel.UUID
	EntityID kernel.UUID
	Fields   map[string]string
}

// Notifier delivers notifications, typically by email.
type Notifier interface {
	Notify(ctx context.Context, n Notification) error
}

// PaymentLinkRequest asks the payment provider for a checkout link.
type PaymentLinkRequest struct {
	InvoiceID  kernel.UUID
	ShipmentID kernel.UUID
	ClientID   kernel.UUID
	AmountEur  decimal.Decimal
}

// PaymentLinkClient talks to the external payment service.
type PaymentLinkClient interface {
	CreatePaymentLink(ctx context.Context, req PaymentLinkRequest) (string, error)
}
