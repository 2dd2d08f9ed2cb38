package peakjoin

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with peakjoin-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithKind adds a join kind field to the logger.
func (l *Logger) WithKind(kind string) *Logger {
	return &Logger{
		Logger: l.Logger.With("kind", kind),
	}
}

// WithStoreKey adds a blob store key field to the logger.
func (l *Logger) WithStoreKey(key string) *Logger {
	return &Logger{
		Logger: l.Logger.With("key", key),
	}
}

// LogAlign logs one alignment.
func (l *Logger) LogAlign(ctx context.Context, kind string, rows, matched int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "align failed",
			"kind", kind,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "align completed",
			"kind", kind,
			"rows", rows,
			"matched", matched,
		)
	}
}

// LogResolve logs a duplicate resolution pass.
func (l *Logger) LogResolve(ctx context.Context, queries, matched int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "resolve failed",
			"queries", queries,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "resolve completed",
			"queries", queries,
			"matched", matched,
		)
	}
}

// LogBatch logs a batch alignment.
func (l *Logger) LogBatch(ctx context.Context, pairs, failed int) {
	if failed > 0 {
		l.WarnContext(ctx, "batch align completed with failures",
			"total", pairs,
			"failed", failed,
			"success", pairs-failed,
		)
	} else {
		l.InfoContext(ctx, "batch align completed",
			"pairs", pairs,
		)
	}
}

// LogSave logs a result save to the blob store.
func (l *Logger) LogSave(ctx context.Context, key string, bytes int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "result save failed",
			"key", key,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "result saved",
			"key", key,
			"bytes", bytes,
		)
	}
}

// LogLoad logs a result load from the blob store.
func (l *Logger) LogLoad(ctx context.Context, key string, bytes int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "result load failed",
			"key", key,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "result loaded",
			"key", key,
			"bytes", bytes,
		)
	}
}
