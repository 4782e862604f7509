package config

import "os"

const (
	tickerEnabledEnv  = "TICKER_ENABLED"
	tickerScheduleEnv = "TICKER_SCHEDULE"

	defaultTickerSchedule = "@every 1m"
)

// TickerConfig controls the built-in cron ticker used when no external
// scheduler invokes the trigger endpoint.
type TickerConfig struct {
	Enabled  bool
	Schedule string
}

func LoadTickerConfig() *TickerConfig {
	schedule := os.Getenv(tickerScheduleEnv)
	if schedule == "" {
		schedule = defaultTickerSchedule
	}

	return &TickerConfig{
		Enabled:  os.Getenv(tickerEnabledEnv) == "true",
		Schedule: schedule,
	}
}
