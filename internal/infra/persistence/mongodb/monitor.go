package mongodb

import (
	"context"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/v2/event"
)

const slowCommandThreshold = 200 * time.Millisecond

// newCommandMonitor logs every command at debug level, slow ones at info and failures at warn.
func newCommandMonitor(logger *slog.Logger) *event.CommandMonitor {
	logger = logger.With(slog.String("component", "mongo"))

	return &event.CommandMonitor{
		Succeeded: func(ctx context.Context, evt *event.CommandSucceededEvent) {
			level := slog.LevelDebug
			if evt.Duration >= slowCommandThreshold {
				level = slog.LevelInfo
			}
			logger.LogAttrs(ctx, level, "Mongo command",
				slog.String("command", evt.CommandName),
				slog.String("database", evt.DatabaseName),
				slog.Duration("elapsed", evt.Duration),
			)
		},
		Failed: func(ctx context.Context, evt *event.CommandFailedEvent) {
			logger.LogAttrs(ctx, slog.LevelWarn, "Mongo command failed",
				slog.String("command", evt.CommandName),
				slog.String("database", evt.DatabaseName),
				slog.Duration("elapsed", evt.Duration),
				slog.Any("error", evt.Failure),
			)
		},
	}
}
