// Package trace provides operation-boundary logging shared by every
// typeforge service, modeled on the teacher's internal/trace helper.
//
// Service methods that trace an operation log its start and end through
// [Begin] and [Op.End] rather than ad hoc slog calls, so operation names and attribute
// shapes stay consistent across the Graph, Inference, Validation, and
// Overload services.
package trace

import (
	"context"
	"log/slog"
)

// Enabled reports whether logging at level is enabled for logger. Returns
// false if logger is nil.
func Enabled(ctx context.Context, logger *slog.Logger, level slog.Level) bool {
	if logger == nil {
		return false
	}
	return logger.Enabled(ctx, level)
}

// Debug logs msg at Debug level if logger is non-nil and enabled.
func Debug(ctx context.Context, logger *slog.Logger, msg string, attrs ...slog.Attr) {
	if logger == nil || !logger.Enabled(ctx, slog.LevelDebug) {
		return
	}
	logger.LogAttrs(ctx, slog.LevelDebug, msg, attrs...)
}

// DebugLazy logs at Debug level with lazily-computed attributes, avoiding
// the cost of fn when logging is disabled.
func DebugLazy(ctx context.Context, logger *slog.Logger, msg string, fn func() []slog.Attr) {
	if logger == nil || !logger.Enabled(ctx, slog.LevelDebug) {
		return
	}
	logger.LogAttrs(ctx, slog.LevelDebug, msg, fn()...)
}
