package schedule

import (
	"github.com/JulianRR24/planningweb-push-scheduler/internal/domain"
)

// Resolver extracts the day's event list from the active routine.
type Resolver struct{}

func NewResolver() *Resolver {
	return &Resolver{}
}

// ResolveToday returns the active routine's events for the given day.
// Returns domain.ErrNoActiveRoutine or domain.ErrRoutineNotFound when the
// snapshot has no usable routine; callers treat both as a no-op cycle, not
// a failure. A day without an entry yields an empty slice.
func (r *Resolver) ResolveToday(snap *domain.StateSnapshot, day domain.DayKey) ([]domain.Event, error) {
	routine, err := snap.ActiveRoutine()
	if err != nil {
		return nil, err
	}
	return routine.EventsOn(day), nil
}
