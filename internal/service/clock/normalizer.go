package clock

import (
	"time"

	"github.com/JulianRR24/planningweb-push-scheduler/internal/domain"
)

// Normalizer converts an absolute evaluation instant into the (day key,
// minute-of-day) pair the schedule is expressed in, under a fixed UTC
// offset. The engine performs no timezone lookup; the app stores wall-clock
// times and all devices share one configured offset.
type Normalizer struct {
	offsetMinutes int
}

func NewNormalizer(offsetMinutes int) *Normalizer {
	return &Normalizer{offsetMinutes: offsetMinutes}
}

func (n *Normalizer) OffsetMinutes() int {
	return n.offsetMinutes
}

// Normalize shifts the instant by the configured offset and reads the day
// and minute from the shifted UTC clock.
func (n *Normalizer) Normalize(t time.Time) (domain.DayKey, int) {
	local := t.UTC().Add(time.Duration(n.offsetMinutes) * time.Minute)
	minute := local.Hour()*60 + local.Minute()
	return domain.DayKeyForWeekday(local.Weekday()), minute
}

// LocalTime returns the offset-shifted instant, for debug reporting.
func (n *Normalizer) LocalTime(t time.Time) time.Time {
	return t.UTC().Add(time.Duration(n.offsetMinutes) * time.Minute)
}
