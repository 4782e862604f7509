package dispatch

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/JulianRR24/planningweb-push-scheduler/internal/domain"
	"github.com/JulianRR24/planningweb-push-scheduler/internal/observability/metrics"
	"github.com/JulianRR24/planningweb-push-scheduler/internal/observability/tracing"
)

// Dispatcher broadcasts each plan entry to the full recipient set. Entries
// are independent, so their gateway calls run concurrently; each call is
// bounded by the gateway client's timeout. One entry failing never blocks
// the rest, and nothing is retried within a cycle.
type Dispatcher struct {
	gateway      domain.PushGateway
	cycleMetrics *metrics.CycleMetrics
}

func NewDispatcher(gateway domain.PushGateway, cycleMetrics *metrics.CycleMetrics) *Dispatcher {
	return &Dispatcher{
		gateway:      gateway,
		cycleMetrics: cycleMetrics,
	}
}

// Dispatch sends every entry and returns results in entry order.
func (d *Dispatcher) Dispatch(ctx context.Context, entries []domain.PlanEntry, recipients []string) []Result {
	results := make([]Result, len(entries))

	var wg sync.WaitGroup
	for i, entry := range entries {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i] = d.send(ctx, entry, recipients)
		}()
	}
	wg.Wait()

	return results
}

func (d *Dispatcher) send(ctx context.Context, entry domain.PlanEntry, recipients []string) Result {
	sendCtx, span := tracing.StartDispatchSpan(ctx, entry.ID, len(recipients))
	defer span.End()

	start := time.Now()
	resp, err := d.gateway.SendBroadcast(sendCtx, entry, recipients)
	duration := time.Since(start)

	tracing.RecordDispatchResult(span, err)
	d.cycleMetrics.RecordDelivery(ctx, err == nil, duration)

	if err != nil {
		slog.WarnContext(ctx, "delivery failed",
			slog.String("entry_id", entry.ID),
			slog.Int("recipient_count", len(recipients)),
			slog.String("error", err.Error()),
		)
		return Result{
			EntryID: entry.ID,
			Title:   entry.Title,
			Error:   err.Error(),
		}
	}

	slog.InfoContext(ctx, "notification dispatched",
		slog.String("entry_id", entry.ID),
		slog.Int("recipient_count", len(recipients)),
		slog.Duration("duration", duration),
	)

	return Result{
		EntryID: entry.ID,
		Title:   entry.Title,
		Success: true,
		Gateway: resp,
	}
}
