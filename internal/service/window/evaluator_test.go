package window

import (
	"testing"

	"github.com/JulianRR24/planningweb-push-scheduler/internal/domain"
)

var defaultCfg = domain.NotifyConfig{LeadStartMinutes: 10, LeadEndMinutes: 5}

func TestEvaluateExactMatch(t *testing.T) {
	gym := domain.Event{ID: "e1", Title: "Gym", Start: "08:00", End: "09:00"}
	events := []domain.Event{gym}

	tests := []struct {
		name      string
		nowMinute int
		wantKinds []domain.BoundaryKind
	}{
		// start = 480, leadStart = 10 -> trigger at 470 (07:50)
		{name: "start trigger minute fires", nowMinute: 470, wantKinds: []domain.BoundaryKind{domain.BoundaryStart}},
		{name: "minute before start trigger does not fire", nowMinute: 469, wantKinds: nil},
		{name: "minute after start trigger does not fire", nowMinute: 471, wantKinds: nil},
		{name: "event start itself does not fire", nowMinute: 480, wantKinds: nil},
		// end = 540, leadEnd = 5 -> trigger at 535 (08:55)
		{name: "end trigger minute fires", nowMinute: 535, wantKinds: []domain.BoundaryKind{domain.BoundaryEnd}},
		{name: "minute before end trigger does not fire", nowMinute: 534, wantKinds: nil},
		{name: "minute after end trigger does not fire", nowMinute: 536, wantKinds: nil},
		{name: "unrelated minute fires nothing", nowMinute: 475, wantKinds: nil},
	}

	evaluator := NewEvaluator()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			matches := evaluator.Evaluate(events, tt.nowMinute, defaultCfg)
			if len(matches) != len(tt.wantKinds) {
				t.Fatalf("got %d matches, want %d", len(matches), len(tt.wantKinds))
			}
			for i, kind := range tt.wantKinds {
				if matches[i].Kind != kind {
					t.Errorf("match[%d].Kind = %q, want %q", i, matches[i].Kind, kind)
				}
				if matches[i].Event.ID != "e1" {
					t.Errorf("match[%d].Event.ID = %q, want e1", i, matches[i].Event.ID)
				}
			}
		})
	}
}

func TestEvaluateClampsEarlyEvents(t *testing.T) {
	// start 00:05 with a 10 minute lead would be minute -5; it clamps to 0.
	early := domain.Event{ID: "e1", Title: "Early", Start: "00:05", End: "00:30"}

	evaluator := NewEvaluator()

	matches := evaluator.Evaluate([]domain.Event{early}, 0, defaultCfg)
	if len(matches) != 1 || matches[0].Kind != domain.BoundaryStart {
		t.Fatalf("expected one start match at minute 0, got %v", matches)
	}

	if got := StartTriggerMinute(5, defaultCfg); got != 0 {
		t.Errorf("StartTriggerMinute(5) = %d, want 0", got)
	}
	if got := EndTriggerMinute(3, defaultCfg); got != 0 {
		t.Errorf("EndTriggerMinute(3) = %d, want 0", got)
	}
	if got := StartTriggerMinute(480, defaultCfg); got != 470 {
		t.Errorf("StartTriggerMinute(480) = %d, want 470", got)
	}
}

func TestEvaluateBothBoundariesSameMinute(t *testing.T) {
	// A zero-length block where both trigger minutes coincide emits both
	// boundaries for the same evaluation.
	ev := domain.Event{ID: "e1", Title: "Break", Start: "10:00", End: "10:05"}
	cfg := domain.NotifyConfig{LeadStartMinutes: 0, LeadEndMinutes: 5}

	matches := NewEvaluator().Evaluate([]domain.Event{ev}, 600, cfg)
	if len(matches) != 2 {
		t.Fatalf("got %d matches, want 2", len(matches))
	}
	if matches[0].Kind != domain.BoundaryStart || matches[1].Kind != domain.BoundaryEnd {
		t.Errorf("boundary order = %q,%q, want start,end", matches[0].Kind, matches[1].Kind)
	}
}

func TestEvaluateSkipsInvalidEvents(t *testing.T) {
	events := []domain.Event{
		{ID: "bad-start", Start: "late", End: "09:00"},
		{ID: "bad-end", Start: "08:00", End: ""},
		{ID: "ok", Start: "08:00", End: "09:00"},
	}

	matches := NewEvaluator().Evaluate(events, 470, defaultCfg)
	if len(matches) != 1 || matches[0].Event.ID != "ok" {
		t.Fatalf("expected only the valid event to match, got %v", matches)
	}
}

func TestEvaluatePreservesEventOrder(t *testing.T) {
	events := []domain.Event{
		{ID: "a", Start: "08:00", End: "09:00"},
		{ID: "b", Start: "08:00", End: "10:00"},
	}

	matches := NewEvaluator().Evaluate(events, 470, defaultCfg)
	if len(matches) != 2 {
		t.Fatalf("got %d matches, want 2", len(matches))
	}
	if matches[0].Event.ID != "a" || matches[1].Event.ID != "b" {
		t.Errorf("order = %q,%q, want a,b", matches[0].Event.ID, matches[1].Event.ID)
	}
}
