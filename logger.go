package wordcount

import (
	"context"
	"io"
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with wordcount-specific context.
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
func NewJSONLogger(level slog.Level) *Logger {
	return &Logger{
		Logger: slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level})),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	return &Logger{
		Logger: slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})),
	}
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
			Level: slog.Level(1000), // Unreachable level
		})),
	}
}

// WithWorker adds a worker field to the logger.
func (l *Logger) WithWorker(id int) *Logger {
	return &Logger{
		Logger: l.Logger.With("worker", id),
	}
}

// WithBytes adds an input size field to the logger.
func (l *Logger) WithBytes(n int) *Logger {
	return &Logger{
		Logger: l.Logger.With("bytes", n),
	}
}

// LogPartition logs a finished worker.
func (l *Logger) LogPartition(ctx context.Context, worker, start, end int, words uint64, unique int, d time.Duration) {
	l.DebugContext(ctx, "partition counted",
		"worker", worker,
		"start", start,
		"end", end,
		"words", words,
		"unique", unique,
		"duration", d,
	)
}

// LogMerge logs the merge phase.
func (l *Logger) LogMerge(ctx context.Context, tables, unique int, d time.Duration) {
	l.DebugContext(ctx, "tables merged",
		"tables", tables,
		"unique", unique,
		"duration", d,
	)
}

// LogRun logs a complete run.
func (l *Logger) LogRun(ctx context.Context, size int, res *Result, err error) {
	if err != nil {
		l.ErrorContext(ctx, "count failed",
			"bytes", size,
			"error", err,
		)
		return
	}
	l.InfoContext(ctx, "count completed",
		"bytes", size,
		"words", res.TotalWords,
		"unique", res.UniqueWords,
		"workers", res.Stats.Workers,
		"kernel", res.Stats.Kernel,
		"hash", res.Stats.Hash,
		"duration", res.Stats.Total,
	)
}
