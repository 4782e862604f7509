package trigger

import (
	"github.com/JulianRR24/planningweb-push-scheduler/internal/domain"
)

// Planner turns evaluator matches into the cycle's notification plan.
type Planner struct{}

func NewPlanner() *Planner {
	return &Planner{}
}

// Plan builds one entry per match, order-preserving. Duplicate idempotency
// ids (the same event listed twice for a day) collapse to the first
// occurrence.
func (p *Planner) Plan(matches []domain.Match, day domain.DayKey) []domain.PlanEntry {
	entries := make([]domain.PlanEntry, 0, len(matches))
	seen := make(map[string]struct{}, len(matches))

	for _, m := range matches {
		entry := domain.NewPlanEntry(m, day)
		if _, ok := seen[entry.ID]; ok {
			continue
		}
		seen[entry.ID] = struct{}{}
		entries = append(entries, entry)
	}

	return entries
}
