// Package tasks enqueues the engine's best-effort side effects on asynq.
// The payload types are shared with the worker in adapters/in/tasks.
package tasks

import (
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/ports"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	TypeRecalculateCapacity = "capacity:recalculate"
	TypeNotify              = "notification:send"
	TypeRequestPaymentLink  = "payment:link"
)

type CapacityPayload struct {
	ClientID uuid.UUID `json:"client_id"`
}

type NotificationPayload struct {
	Kind     string            `json:"kind"`
	ClientID uuid.UUID         `json:"client_id"`
	EntityID uuid.UUID         `json:"entity_id"`
	Fields   map[string]string `json:"fields,omitempty"`
}

func NotificationPayloadOf(n ports.Notification) NotificationPayload {
	return NotificationPayload{
		Kind:     string(n.Kind),
		ClientID: n.ClientID.Bytes(),
		EntityID: n.EntityID.Bytes(),
		Fields:   n.Fields,
	}
}

func (p NotificationPayload) ToNotification() (ports.Notification, error) {
	clientID, err := kernel.UUIDFromBytes(p.ClientID[:])
	if err != nil {
		return ports.Notification{}, err
	}
	entityID, err := kernel.UUIDFromBytes(p.EntityID[:])
	if err != nil {
		return ports.Notification{}, err
	}
	return ports.Notification{
		Kind:     ports.NotificationKind(p.Kind),
		ClientID: clientID,
		EntityID: entityID,
		Fields:   p.Fields,
	}, nil
}

type PaymentLinkPayload struct {
	InvoiceID  uuid.UUID       `json:"invoice_id"`
	ShipmentID uuid.UUID       `json:"shipment_id"`
	ClientID   uuid.UUID       `json:"client_id"`
	AmountEur  decimal.Decimal `json:"amount_eur"`
}

func PaymentLinkPayloadOf(req ports.PaymentLinkRequest) PaymentLinkPayload {
	return PaymentLinkPayload{
		InvoiceID:  req.InvoiceID.Bytes(),
		ShipmentID: req.ShipmentID.Bytes(),
		ClientID:   req.ClientID.Bytes(),
		AmountEur:  req.AmountEur,
	}
}

func (p PaymentLinkPayload) ToRequest() (ports.PaymentLinkRequest, error) {
	invoiceID, err := kernel.UUIDFromBytes(p.InvoiceID[:])
	if err != nil {
		return ports.PaymentLinkRequest{}, err
	}
	shipmentID, err := kernel.UUIDFromBytes(p.ShipmentID[:])
	if err != nil {
		return ports.PaymentLinkRequest{}, err
	}
	clientID, err := kernel.UUIDFromBytes(p.ClientID[:])
	if err != nil {
		return ports.PaymentLinkRequest{}, err
	}
	return ports.PaymentLinkRequest{
		InvoiceID:  invoiceID,
		ShipmentID: shipmentID,
		ClientID:   clientID,
		AmountEur:  p.AmountEur,
	}, nil
}
