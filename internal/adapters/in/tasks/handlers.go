// Package tasks runs the asynq worker side of the best-effort side effects
// enqueued by adapters/out/tasks.
package tasks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	outtasks "fulfillment/internal/adapters/out/tasks"
	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"

	"github.com/hibiken/asynq"
)

type CapacityRecalculator interface {
	Handle(ctx context.Context, cmd commands.RecalculateCapacityCommand) (float64, error)
}

type Handlers struct {
	capacity CapacityRecalculator
	notifier ports.Notifier
	payments ports.PaymentLinkClient
	logger   *slog.Logger
}

func NewHandlers(
	capacity CapacityRecalculator,
	notifier ports.Notifier,
	payments ports.PaymentLinkClient,
	logger *slog.Logger,
) *Handlers {
	return &Handlers{
		capacity: capacity,
		notifier: notifier,
		payments: payments,
		logger:   logger.With("component", "task_worker"),
	}
}

// Register mounts every task type on mux.
func (h *Handlers) Register(mux *asynq.ServeMux) {
	mux.HandleFunc(outtasks.TypeRecalculateCapacity, h.RecalculateCapacity)
	mux.HandleFunc(outtasks.TypeNotify, h.Notify)
	mux.HandleFunc(outtasks.TypeRequestPaymentLink, h.RequestPaymentLink)
}

func (h *Handlers) RecalculateCapacity(ctx context.Context, t *asynq.Task) error {
	var payload outtasks.CapacityPayload
	if err := decode(t, &payload); err != nil {
		return err
	}

	clientID, err := kernel.UUIDFromBytes(payload.ClientID[:])
	if err != nil {
		return skip(err)
	}
	cmd, err := commands.NewRecalculateCapacityCommand(clientID)
	if err != nil {
		return skip(err)
	}

	used, err := h.capacity.Handle(ctx, cmd)
	if err != nil {
		return permanentIfValidation(err)
	}
	h.logger.InfoContext(ctx, "capacity recalculated", "client_id", clientID.String(), "used_cbm", used)
	return nil
}

func (h *Handlers) Notify(ctx context.Context, t *asynq.Task) error {
	var payload outtasks.NotificationPayload
	if err := decode(t, &payload); err != nil {
		return err
	}
	n, err := payload.ToNotification()
	if err != nil {
		return skip(err)
	}
	return h.notifier.Notify(ctx, n)
}

// RequestPaymentLink asks the provider for a checkout link and passes it on
// to the client as a notification.
func (h *Handlers) RequestPaymentLink(ctx context.Context, t *asynq.Task) error {
	var payload outtasks.PaymentLinkPayload
	if err := decode(t, &payload); err != nil {
		return err
	}
	req, err := payload.ToRequest()
	if err != nil {
		return skip(err)
	}

	link, err := h.payments.CreatePaymentLink(ctx, req)
	if err != nil {
		return permanentIfValidation(err)
	}

	return h.notifier.Notify(ctx, ports.Notification{
		Kind:     ports.NotificationPaymentLinkCreated,
		ClientID: req.ClientID,
		EntityID: req.ShipmentID,
		Fields: map[string]string{
			"invoiceId": req.InvoiceID.String(),
			"amountEur": req.AmountEur.StringFixed(2),
			"url":       link,
		},
	})
}

func decode(t *asynq.Task, v any) error {
	if err := json.Unmarshal(t.Payload(), v); err != nil {
		return skip(fmt.Errorf("decode %s payload: %w", t.Type(), err))
	}
	return nil
}

func skip(err error) error {
	return fmt.Errorf("%w: %w", err, asynq.SkipRetry)
}

// permanentIfValidation stops retries for inputs that will never succeed.
func permanentIfValidation(err error) error {
	if errs.IsValidation(err) || errors.Is(err, errs.ErrObjectNotFound) {
		return skip(err)
	}
	return err
}
