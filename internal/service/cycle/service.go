package cycle

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"

	"github.com/JulianRR24/planningweb-push-scheduler/internal/domain"
	"github.com/JulianRR24/planningweb-push-scheduler/internal/observability/metrics"
	"github.com/JulianRR24/planningweb-push-scheduler/internal/observability/tracing"
	"github.com/JulianRR24/planningweb-push-scheduler/internal/service/clock"
	"github.com/JulianRR24/planningweb-push-scheduler/internal/service/dispatch"
	"github.com/JulianRR24/planningweb-push-scheduler/internal/service/schedule"
	"github.com/JulianRR24/planningweb-push-scheduler/internal/service/trigger"
	"github.com/JulianRR24/planningweb-push-scheduler/internal/service/window"
)

// Service runs one evaluation cycle: read a single state snapshot, resolve
// the day's events, evaluate trigger windows, plan notifications, and
// broadcast them. The cycle is stateless; the external scheduler's
// once-per-minute cadence is what prevents duplicate firing.
type Service struct {
	state        domain.StateRepository
	dispatcher   *dispatch.Dispatcher
	normalizer   *clock.Normalizer
	resolver     *schedule.Resolver
	evaluator    *window.Evaluator
	planner      *trigger.Planner
	recorder     domain.DispatchRecorder
	cycleMetrics *metrics.CycleMetrics
	credentials  CredentialStatus
}

func NewService(
	state domain.StateRepository,
	dispatcher *dispatch.Dispatcher,
	normalizer *clock.Normalizer,
	resolver *schedule.Resolver,
	evaluator *window.Evaluator,
	planner *trigger.Planner,
	recorder domain.DispatchRecorder,
	cycleMetrics *metrics.CycleMetrics,
	credentials CredentialStatus,
) *Service {
	return &Service{
		state:        state,
		dispatcher:   dispatcher,
		normalizer:   normalizer,
		resolver:     resolver,
		evaluator:    evaluator,
		planner:      planner,
		recorder:     recorder,
		cycleMetrics: cycleMetrics,
		credentials:  credentials,
	}
}

// Run executes the cycle for the given evaluation instant. An error is only
// returned when the state snapshot cannot be fetched; every other path
// produces a Response.
func (s *Service) Run(ctx context.Context, at time.Time) (*Response, error) {
	runID := uuid.NewString()
	started := time.Now()

	ctx, span := tracing.StartCycleSpan(ctx, runID, at)
	defer span.End()

	snapCtx, snapSpan := tracing.StartSnapshotSpan(ctx)
	snap, err := s.state.Snapshot(snapCtx)
	snapSpan.End()
	if err != nil {
		s.cycleMetrics.RecordCycle(ctx, outcomeError, time.Since(started))
		tracing.RecordCycleResult(span, 0, 0, 0, outcomeError, err)
		slog.ErrorContext(ctx, "failed to fetch state snapshot",
			slog.String("run_id", runID),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("fetch state snapshot: %w", err)
	}

	day, nowMinute := s.normalizer.Normalize(at)
	recipients := domain.RecipientSet(snap.Devices)

	debug := DebugInfo{
		RunID:             runID,
		ServerTimeUTC:     at.UTC(),
		LocalTime:         s.normalizer.LocalTime(at),
		NowMinute:         nowMinute,
		DayKey:            day.String(),
		OffsetMinutes:     s.normalizer.OffsetMinutes(),
		DevicesFound:      len(recipients),
		ActiveRoutineID:   snap.ActiveRoutineID,
		SecretsConfigured: s.credentials,
	}

	if len(recipients) == 0 {
		return s.noop(ctx, span, started, outcomeNoDevices, msgNoDevices, debug), nil
	}

	events, err := s.resolver.ResolveToday(snap, day)
	if err != nil {
		if errors.Is(err, domain.ErrNoActiveRoutine) {
			return s.noop(ctx, span, started, outcomeNoActiveRoutine, msgNoActiveRoutine, debug), nil
		}
		return s.noop(ctx, span, started, outcomeRoutineNotFound, msgRoutineNotFound, debug), nil
	}
	debug.EventsToday = len(events)

	matches := s.evaluator.Evaluate(events, nowMinute, snap.Notify)
	entries := s.planner.Plan(matches, day)
	s.cycleMetrics.RecordPlanned(ctx, len(entries))

	slog.InfoContext(ctx, "cycle evaluated",
		slog.String("run_id", runID),
		slog.String("day", day.String()),
		slog.Int("now_minute", nowMinute),
		slog.Int("events_today", len(events)),
		slog.Int("planned", len(entries)),
		slog.Int("recipients", len(recipients)),
	)

	if len(entries) == 0 {
		return s.noop(ctx, span, started, outcomeIdle, "", debug), nil
	}

	results := s.dispatcher.Dispatch(ctx, entries, recipients)
	debug.NotificationsSent = len(results)

	failed := 0
	for _, r := range results {
		if !r.Success {
			failed++
		}
	}

	s.record(ctx, runID, at, results, len(recipients))

	s.cycleMetrics.RecordCycle(ctx, outcomeDispatched, time.Since(started))
	tracing.RecordCycleResult(span, len(entries), len(results)-failed, failed, outcomeDispatched, nil)

	return &Response{
		Success: true,
		Results: results,
		Debug:   debug,
	}, nil
}

func (s *Service) noop(ctx context.Context, span trace.Span, started time.Time, outcome, message string, debug DebugInfo) *Response {
	s.cycleMetrics.RecordCycle(ctx, outcome, time.Since(started))
	tracing.RecordCycleResult(span, 0, 0, 0, outcome, nil)

	if message != "" {
		slog.InfoContext(ctx, "cycle completed as no-op",
			slog.String("run_id", debug.RunID),
			slog.String("reason", message),
		)
	}

	return &Response{
		Success: true,
		Message: message,
		Results: []dispatch.Result{},
		Debug:   debug,
	}
}

func (s *Service) record(ctx context.Context, runID string, at time.Time, results []dispatch.Result, recipientCount int) {
	if s.recorder == nil {
		return
	}

	records := make([]domain.DispatchRecord, 0, len(results))
	for _, r := range results {
		records = append(records, domain.DispatchRecord{
			RunID:          runID,
			CycleTime:      at.UTC(),
			EntryID:        r.EntryID,
			RecipientCount: recipientCount,
			Success:        r.Success,
			Error:          r.Error,
		})
	}

	if err := s.recorder.RecordCycle(ctx, records); err != nil {
		slog.WarnContext(ctx, "failed to record dispatch results",
			slog.String("run_id", runID),
			slog.String("error", err.Error()),
		)
	}
}
