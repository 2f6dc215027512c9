// Package notifications delivers client notifications. Email delivery is run
// by a separate mail service that tails the notification log stream, so the
// adapter writes one structured record per message.
package notifications

import (
	"context"
	"log/slog"

	"fulfillment/internal/core/ports"
)

var _ ports.Notifier = (*LogNotifier)(nil)

type LogNotifier struct {
	logger *slog.Logger
}

func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger.With("component", "notifier")}
}

func (n *LogNotifier) Notify(ctx context.Context, msg ports.Notification) error {
	attrs := make([]any, 0, len(msg.Fields))
	for k, v := range msg.Fields {
		attrs = append(attrs, slog.String(k, v))
	}

	n.logger.InfoContext(ctx, "notification",
		slog.String("kind", string(msg.Kind)),
		slog.String("client_id", msg.ClientID.String()),
		slog.String("entity_id", msg.EntityID.String()),
		slog.Group("fields", attrs...),
	)
	return nil
}
