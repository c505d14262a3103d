// Package sheets defines the port for exporting periodic summaries.
package sheets

import (
	"context"
	"time"

	"foodspend/internal/core"
)

// SummaryWriter appends one periodic spending summary to an external sink.
type SummaryWriter interface {
	AppendSummary(ctx context.Context, s core.PeriodSummary, boundary, generatedAt time.Time) error
}
