package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DayKey identifies one day of the weekly schedule, matching the keys the
// PlanningWeb app stores under each routine's "days" object.
type DayKey string

const (
	DayMon DayKey = "mon"
	DayTue DayKey = "tue"
	DayWed DayKey = "wed"
	DayThu DayKey = "thu"
	DayFri DayKey = "fri"
	DaySat DayKey = "sat"
	DaySun DayKey = "sun"
)

// weekdayKeys is indexed by time.Weekday (Sunday = 0).
var weekdayKeys = [7]DayKey{DaySun, DayMon, DayTue, DayWed, DayThu, DayFri, DaySat}

func DayKeyForWeekday(w time.Weekday) DayKey {
	return weekdayKeys[w]
}

func (d DayKey) String() string {
	return string(d)
}

// Routine is a named weekly schedule of events. Exactly one routine is
// marked active at a time; the engine only reads it.
type Routine struct {
	ID   string             `json:"id"`
	Name string             `json:"name,omitempty"`
	Days map[DayKey][]Event `json:"days"`
}

// EventsOn returns the day's event list, or an empty slice when the routine
// has no entry for that day.
func (r *Routine) EventsOn(day DayKey) []Event {
	if r.Days == nil {
		return nil
	}
	return r.Days[day]
}

// Event is a titled time interval within a day. Start and End are stored as
// the app writes them: "HH:MM" wall-clock strings, start <= end on the same
// day.
type Event struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Start string `json:"start"`
	End   string `json:"end"`
}

// ParseClock converts an "HH:MM" string into a minute-of-day value (0-1439).
func ParseClock(s string) (int, error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid clock string %q", s)
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid clock string %q: %w", s, err)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid clock string %q: %w", s, err)
	}

	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("clock string %q out of range", s)
	}

	return hour*60 + minute, nil
}
