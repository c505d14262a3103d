// Package worker runs the periodic summary scheduler.
package worker

import (
	"context"
	"log/slog"
	"time"

	"foodspend/internal/services"
)

// SummaryWorker drives the SummaryProcessor on a fixed check interval.
// The interval is a polling cadence, not the emission cadence: the
// processor's dueness checks keep emissions aligned to the week/month
// boundaries regardless of how often the worker wakes up.
type SummaryWorker struct {
	processor *services.SummaryProcessor
	interval  time.Duration
}

func NewSummaryWorker(processor *services.SummaryProcessor, interval time.Duration) *SummaryWorker {
	return &SummaryWorker{
		processor: processor,
		interval:  interval,
	}
}

// Run blocks until ctx is cancelled, checking for due summaries every
// interval. Processing errors are logged and the loop keeps going.
func (w *SummaryWorker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	slog.InfoContext(ctx, "Summary worker started", "check_interval", w.interval)

	for {
		select {
		case <-ctx.Done():
			slog.InfoContext(ctx, "Summary worker stopping", "reason", ctx.Err())
			return ctx.Err()
		case <-ticker.C:
			emitted, err := w.processor.ProcessDue(ctx)
			if err != nil {
				slog.ErrorContext(ctx, "Summary processing failed", "error", err)
				continue
			}
			if emitted > 0 {
				slog.InfoContext(ctx, "Summary processing complete", "emitted", emitted)
			}
		}
	}
}
