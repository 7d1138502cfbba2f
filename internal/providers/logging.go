package providers

import (
	"context"
	"log/slog"

	"github.com/preston-bernstein/football-leagues/internal/logging"
)

// logWithProvider emits a log entry on the context logger (or fallback) and always includes provider name.
func logWithProvider(ctx context.Context, fallback *slog.Logger, level slog.Level, provider string, msg string, args ...any) {
	logger := logging.FromContext(ctx, fallback)
	if logger == nil {
		return
	}
	args = append(args, slog.String(logging.FieldProvider, provider))
	logger.Log(ctx, level, msg, args...)
}
