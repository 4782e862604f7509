package window

import (
	"log/slog"

	"github.com/JulianRR24/planningweb-push-scheduler/internal/domain"
)

// Evaluator decides which event boundaries fire at the current minute.
//
// The match is exact equality, not a range: with the external scheduler
// invoking one cycle per minute this yields at-most-one firing per boundary.
// A skipped or delayed tick silently drops its triggers; that is the
// documented cadence contract, not something the evaluator compensates for.
type Evaluator struct{}

func NewEvaluator() *Evaluator {
	return &Evaluator{}
}

// Evaluate returns the (event, boundary) pairs whose trigger minute equals
// nowMinute, preserving event order. Events with unparseable clock strings
// are skipped.
func (e *Evaluator) Evaluate(events []domain.Event, nowMinute int, cfg domain.NotifyConfig) []domain.Match {
	matches := make([]domain.Match, 0)

	for _, ev := range events {
		start, err := domain.ParseClock(ev.Start)
		if err != nil {
			slog.Warn("skipping event with invalid start time",
				slog.String("event_id", ev.ID),
				slog.String("start", ev.Start),
			)
			continue
		}
		end, err := domain.ParseClock(ev.End)
		if err != nil {
			slog.Warn("skipping event with invalid end time",
				slog.String("event_id", ev.ID),
				slog.String("end", ev.End),
			)
			continue
		}

		if nowMinute == StartTriggerMinute(start, cfg) {
			matches = append(matches, domain.Match{Event: ev, Kind: domain.BoundaryStart})
		}
		if nowMinute == EndTriggerMinute(end, cfg) {
			matches = append(matches, domain.Match{Event: ev, Kind: domain.BoundaryEnd})
		}
	}

	return matches
}

// StartTriggerMinute is the minute the start reminder fires, clamped so
// early events with a large lead time never produce a negative minute.
func StartTriggerMinute(startMinute int, cfg domain.NotifyConfig) int {
	return clampMinute(startMinute - cfg.LeadStartMinutes)
}

// EndTriggerMinute is the minute the end reminder fires.
func EndTriggerMinute(endMinute int, cfg domain.NotifyConfig) int {
	return clampMinute(endMinute - cfg.LeadEndMinutes)
}

func clampMinute(m int) int {
	if m < 0 {
		return 0
	}
	return m
}
