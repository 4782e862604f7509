package config

import (
	"os"
	"strconv"
)

const (
	utcOffsetEnv = "SCHEDULE_UTC_OFFSET_MINUTES"

	// The PlanningWeb app writes wall-clock times in UTC-5.
	defaultUTCOffsetMinutes = -300

	minUTCOffsetMinutes = -720
	maxUTCOffsetMinutes = 840
)

// ScheduleConfig holds the fixed offset between server time and the wall
// clock the stored schedule refers to.
type ScheduleConfig struct {
	UTCOffsetMinutes int
}

func LoadScheduleConfig() (*ScheduleConfig, error) {
	offset := defaultUTCOffsetMinutes
	if raw := os.Getenv(utcOffsetEnv); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return nil, ErrInvalidUTCOffset
		}
		offset = parsed
	}

	return &ScheduleConfig{
		UTCOffsetMinutes: offset,
	}, nil
}

func (c *ScheduleConfig) Validate() error {
	if c == nil || c.UTCOffsetMinutes < minUTCOffsetMinutes || c.UTCOffsetMinutes > maxUTCOffsetMinutes {
		return ErrInvalidUTCOffset
	}
	return nil
}
