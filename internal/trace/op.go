package trace

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"
)

// Op represents a running operation with automatic start/end logging.
//
// Create via [Begin]. It is safe to call methods on a nil *Op, so callers
// can write an unconditional deferred End even when logging is disabled.
type Op struct {
	ctx       context.Context //nolint:containedctx // operation boundary needs cancellation state at End
	logger    *slog.Logger
	name      string
	startTime time.Time
	ended     atomic.Bool
}

// Begin starts a new operation and logs at Debug level.
//
// Operation names follow "typeforge.<package>.<operation>", e.g.
// "typeforge.graph.addEdge". Begin returns nil when logging is disabled
// (logger is nil or below Debug) so the common case allocates nothing.
func Begin(ctx context.Context, logger *slog.Logger, name string, attrs ...slog.Attr) *Op {
	if logger == nil || !logger.Enabled(ctx, slog.LevelDebug) {
		return nil
	}

	op := &Op{ctx: ctx, logger: logger, name: name, startTime: time.Now()}

	logAttrs := make([]slog.Attr, 0, len(attrs)+1)
	logAttrs = append(logAttrs, slog.String("op", name))
	logAttrs = append(logAttrs, attrs...)
	logger.LogAttrs(ctx, slog.LevelDebug, "operation started", logAttrs...)

	return op
}

// End logs operation completion. Safe to call multiple times (only the
// first call logs) and safe to call on a nil *Op.
func (o *Op) End(err error, attrs ...slog.Attr) {
	if o == nil || o.ended.Swap(true) {
		return
	}
	if o.logger == nil || !o.logger.Enabled(o.ctx, slog.LevelDebug) {
		return
	}

	elapsed := time.Since(o.startTime)
	logAttrs := make([]slog.Attr, 0, len(attrs)+3)
	logAttrs = append(logAttrs,
		slog.String("op", o.name),
		slog.Int64("elapsed_ms", elapsed.Milliseconds()),
		slog.Duration("duration", elapsed),
	)
	if err != nil {
		logAttrs = append(logAttrs, slog.String("error", err.Error()))
	}
	logAttrs = append(logAttrs, attrs...)

	o.logger.LogAttrs(o.ctx, slog.LevelDebug, "operation ended", logAttrs...)
}
