package domain

import "fmt"

const (
	DefaultLeadStartMinutes = 10
	DefaultLeadEndMinutes   = 5

	// fallbackTitle is used when an event has no title, matching the app's
	// generic label.
	fallbackTitle = "Evento"
)

// NotifyConfig holds the user-configured lead times: how many minutes before
// an event boundary the reminder fires.
type NotifyConfig struct {
	LeadStartMinutes int
	LeadEndMinutes   int
}

func DefaultNotifyConfig() NotifyConfig {
	return NotifyConfig{
		LeadStartMinutes: DefaultLeadStartMinutes,
		LeadEndMinutes:   DefaultLeadEndMinutes,
	}
}

// BoundaryKind distinguishes the two reminders an event can produce.
type BoundaryKind string

const (
	BoundaryStart BoundaryKind = "start"
	BoundaryEnd   BoundaryKind = "end"
)

func (b BoundaryKind) String() string {
	return string(b)
}

// Match pairs an event with the boundary whose trigger minute equals the
// evaluation minute.
type Match struct {
	Event Event
	Kind  BoundaryKind
}

// PlanEntry is one notification to broadcast. ID is deterministic for a
// physical occurrence (event, boundary, day) so a downstream sink could
// deduplicate; the engine itself never persists sent ids.
type PlanEntry struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Body  string `json:"body"`
}

// NewPlanEntry builds the notification for a match on the given day, using
// the app's Spanish copy.
func NewPlanEntry(m Match, day DayKey) PlanEntry {
	title := m.Event.Title
	if title == "" {
		title = fallbackTitle
	}

	var body string
	switch m.Kind {
	case BoundaryEnd:
		body = fmt.Sprintf("Va a finalizar: %s a las %s", title, m.Event.End)
	default:
		body = fmt.Sprintf("Va a comenzar: %s a las %s", title, m.Event.Start)
	}

	return PlanEntry{
		ID:    fmt.Sprintf("%s_%s_%s", m.Event.ID, m.Kind, day),
		Title: title,
		Body:  body,
	}
}
