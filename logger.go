package subgroup

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/aouyang1/go-subgroup/stats"
)

// Logger wraps slog.Logger with the field names used across a discovery run
type Logger struct {
	*slog.Logger
}

// NewLogger creates a Logger with the given handler. A nil handler logs text to stderr at
// info level.
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

// NewJSONLogger creates a Logger that writes JSON lines to stderr
func NewJSONLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NewTextLogger creates a Logger that writes human-readable lines to stderr
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NoopLogger discards all output
func NoopLogger() *Logger {
	return NewLogger(slog.NewTextHandler(io.Discard, nil))
}

// WithRunID tags every line with the id of a discovery run
func (l *Logger) WithRunID(id string) *Logger {
	return &Logger{
		Logger: l.Logger.With("run_id", id),
	}
}

// LogDiscovery logs the search over one target column
func (l *Logger) LogDiscovery(ctx context.Context, s stats.Summary, err error) {
	if err != nil {
		l.ErrorContext(ctx, "discovery failed",
			"target", s.Target,
			"error", err,
		)
		return
	}
	l.DebugContext(ctx, "discovery completed",
		"target", s.Target,
		"rows", s.NumRows,
		"selectors", s.NumSelectors,
		"candidates", s.NumCandidates,
		"results", s.NumResults,
	)
}

// LogDeduplicate logs a redundancy reduction pass
func (l *Logger) LogDeduplicate(ctx context.Context, before, after int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "deduplication failed",
			"subgroups", before,
			"error", err,
		)
		return
	}
	l.InfoContext(ctx, "deduplication completed",
		"subgroups", before,
		"kept", after,
		"dropped", before-after,
	)
}

// LogCluster logs the clustering of the subgroups of one class
func (l *Logger) LogCluster(ctx context.Context, class string, leaves int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "clustering failed",
			"class", class,
			"leaves", leaves,
			"error", err,
		)
		return
	}
	l.DebugContext(ctx, "clustering completed",
		"class", class,
		"leaves", leaves,
	)
}
