package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"foodspend/internal/amqp"
	"foodspend/internal/clock"
	"foodspend/internal/core"
	"foodspend/internal/sheets"
	"foodspend/internal/store"
)

// SummaryProcessor emits weekly and monthly spending summaries. Each call
// to ProcessDue checks whether a period boundary has passed since the last
// emission and, if so, computes the summary and hands it to the configured
// sinks (log always; AMQP and Sheets when present).
type SummaryProcessor struct {
	store    store.Lister
	clk      clock.Clock
	events   *amqp.Client         // optional
	exporter sheets.SummaryWriter // optional

	lastEmitted map[core.Period]time.Time
}

// NewSummaryProcessor builds a processor. The first emission for each
// period happens at the first boundary crossed after startup.
func NewSummaryProcessor(st store.Lister, clk clock.Clock, events *amqp.Client, exporter sheets.SummaryWriter) *SummaryProcessor {
	now := clk.Now()
	return &SummaryProcessor{
		store:    st,
		clk:      clk,
		events:   events,
		exporter: exporter,
		lastEmitted: map[core.Period]time.Time{
			core.Week:  now,
			core.Month: now,
		},
	}
}

// ProcessDue emits every summary whose period boundary has been crossed
// since the last emission. It returns the number of summaries emitted.
func (p *SummaryProcessor) ProcessDue(ctx context.Context) (int, error) {
	now := p.clk.Now()
	emitted := 0

	for _, period := range []core.Period{core.Week, core.Month} {
		if !CheckerFor(period).IsDue(p.lastEmitted[period], now) {
			continue
		}
		if err := p.Emit(ctx, period, now); err != nil {
			return emitted, fmt.Errorf("emit %s summary: %w", period, err)
		}
		p.lastEmitted[period] = now
		emitted++
	}

	return emitted, nil
}

// Emit computes and publishes a single summary for the period at ref.
func (p *SummaryProcessor) Emit(ctx context.Context, period core.Period, ref time.Time) error {
	orders, err := p.store.AllOrders(ctx)
	if err != nil {
		return fmt.Errorf("read orders: %w", err)
	}

	summary := core.Summarize(orders, period, ref)
	boundary := core.PeriodStart(period, ref)

	slog.InfoContext(ctx, "Spending summary",
		"period", summary.Period,
		"boundary", boundary.Format("2006-01-02"),
		"count", summary.Count,
		"total_cents", summary.Total.Cents)

	if p.events != nil {
		if err := p.events.PublishSummary(ctx, amqp.NewSummaryMessage(summary, boundary, ref)); err != nil {
			slog.ErrorContext(ctx, "Failed to publish summary message",
				"period", period, "error", err)
		}
	}

	if p.exporter != nil {
		if err := p.exporter.AppendSummary(ctx, summary, boundary, ref); err != nil {
			slog.ErrorContext(ctx, "Failed to export summary",
				"period", period, "error", err)
		}
	}

	return nil
}
