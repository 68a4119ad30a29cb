package mongodb

import (
	"context"
	"log/slog"
	"time"

	"bookstore/config"

	"go.mongodb.org/mongo-driver/event"
)

const defaultSlowThreshold = 200 * time.Millisecond

// commandLogger reports driver command outcomes through slog.
type commandLogger struct {
	logger        *slog.Logger
	slowThreshold time.Duration
	verbose       bool
}

func newCommandMonitor(baseLogger *slog.Logger, cfg *config.Config) *event.CommandMonitor {
	l := newCommandLogger(baseLogger, cfg)

	return &event.CommandMonitor{
		Succeeded: l.succeeded,
		Failed:    l.failed,
	}
}

func newCommandLogger(baseLogger *slog.Logger, cfg *config.Config) *commandLogger {
	l := &commandLogger{
		logger:        baseLogger,
		slowThreshold: defaultSlowThreshold,
	}
	if cfg != nil {
		l.verbose = cfg.Env.Debug
		if cfg.Mongo != nil && cfg.Mongo.SlowThreshold > 0 {
			l.slowThreshold = cfg.Mongo.SlowThreshold
		}
	}

	return l
}

func (l *commandLogger) succeeded(ctx context.Context, e *event.CommandSucceededEvent) {
	if l.logger == nil {
		return
	}

	attrs := l.buildAttrs(&e.CommandFinishedEvent)

	if l.slowThreshold > 0 && e.Duration > l.slowThreshold {
		attrs = append(attrs, slog.Duration("slowThreshold", l.slowThreshold))
		l.logger.LogAttrs(ctx, slog.LevelWarn, "MongoDB slow command", attrs...)

		return
	}

	if l.verbose {
		l.logger.LogAttrs(ctx, slog.LevelDebug, "MongoDB command", attrs...)
	}
}

func (l *commandLogger) failed(ctx context.Context, e *event.CommandFailedEvent) {
	if l.logger == nil {
		return
	}

	attrs := l.buildAttrs(&e.CommandFinishedEvent)
	attrs = append(attrs, slog.Any("failure", e.Failure))
	l.logger.LogAttrs(ctx, slog.LevelError, "MongoDB command failed", attrs...)
}

func (l *commandLogger) buildAttrs(e *event.CommandFinishedEvent) []slog.Attr {
	return []slog.Attr{
		slog.String("command", e.CommandName),
		slog.Int64("requestId", e.RequestID),
		slog.Duration("elapsed", e.Duration),
	}
}
