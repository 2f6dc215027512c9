package commands

import (
	"context"
	"log/slog"
)

// bestEffort logs a failed side effect. The primary operation has already
// been committed at this point and its result stands.
func bestEffort(ctx context.Context, logger *slog.Logger, err error, msg string, args ...any) {
	if err == nil {
		return
	}
	logger.WarnContext(ctx, msg, append(args, "error", err)...)
}
