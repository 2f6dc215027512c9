package tasks

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/ports"

	"github.com/hibiken/asynq"
)

const (
	QueueDefault  = "default"
	QueueCritical = "critical"

	capacityUniqueWindow = 30 * time.Second
)

var _ ports.TaskDispatcher = (*Dispatcher)(nil)

// Dispatcher implements ports.TaskDispatcher on an asynq client.
type Dispatcher struct {
	client *asynq.Client
}

func NewDispatcher(client *asynq.Client) *Dispatcher {
	return &Dispatcher{client: client}
}

// RecalculateCapacity enqueues at most one recalculation per client within
// a short window; a burst of packing events collapses into one task.
func (d *Dispatcher) RecalculateCapacity(ctx context.Context, clientID kernel.UUID) error {
	err := d.enqueue(ctx, TypeRecalculateCapacity, CapacityPayload{ClientID: clientID.Bytes()},
		asynq.Queue(QueueDefault),
		asynq.MaxRetry(5),
		asynq.Unique(capacityUniqueWindow),
	)
	if errors.Is(err, asynq.ErrDuplicateTask) {
		return nil
	}
	return err
}

func (d *Dispatcher) Notify(ctx context.Context, n ports.Notification) error {
	return d.enqueue(ctx, TypeNotify, NotificationPayloadOf(n),
		asynq.Queue(QueueDefault),
		asynq.MaxRetry(10),
	)
}

// RequestPaymentLink is keyed by invoice, so a retried acceptance does not
// ask the provider twice.
func (d *Dispatcher) RequestPaymentLink(ctx context.Context, req ports.PaymentLinkRequest) error {
	err := d.enqueue(ctx, TypeRequestPaymentLink, PaymentLinkPayloadOf(req),
		asynq.Queue(QueueCritical),
		asynq.MaxRetry(10),
		asynq.TaskID("payment-link:"+req.InvoiceID.String()),
	)
	if errors.Is(err, asynq.ErrTaskIDConflict) {
		return nil
	}
	return err
}

func (d *Dispatcher) enqueue(ctx context.Context, typename string, payload any, opts ...asynq.Option) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	_, err = d.client.EnqueueContext(ctx, asynq.NewTask(typename, data), opts...)
	return err
}
