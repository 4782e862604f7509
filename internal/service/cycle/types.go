package cycle

import (
	"time"

	"github.com/JulianRR24/planningweb-push-scheduler/internal/service/dispatch"
)

// Response is the full outcome of one evaluation cycle, returned to the
// HTTP caller. Expected empty states (no devices, no active routine) are
// successes with a message, never errors.
type Response struct {
	Success bool              `json:"success"`
	Message string            `json:"message,omitempty"`
	Results []dispatch.Result `json:"results"`
	Debug   DebugInfo         `json:"debug"`
}

// DebugInfo exposes the cycle's inputs and derived values for operability.
// Clients are not expected to parse it.
type DebugInfo struct {
	RunID             string           `json:"run_id"`
	ServerTimeUTC     time.Time        `json:"server_time_utc"`
	LocalTime         time.Time        `json:"local_time"`
	NowMinute         int              `json:"now_minute"`
	DayKey            string           `json:"day_key"`
	OffsetMinutes     int              `json:"offset_minutes"`
	DevicesFound      int              `json:"devices_found"`
	ActiveRoutineID   string           `json:"active_routine_id"`
	EventsToday       int              `json:"events_today"`
	SecretsConfigured CredentialStatus `json:"secrets_configured"`
	NotificationsSent int              `json:"notifications_sent"`
}

// CredentialStatus reports whether the push gateway credentials are set,
// without revealing them.
type CredentialStatus struct {
	AppID  bool `json:"app_id"`
	APIKey bool `json:"api_key"`
}

const (
	msgNoDevices       = "No devices subscribed"
	msgNoActiveRoutine = "No active routine"
	msgRoutineNotFound = "Active routine not found"
)

const (
	outcomeDispatched      = "dispatched"
	outcomeIdle            = "idle"
	outcomeNoDevices       = "no_devices"
	outcomeNoActiveRoutine = "no_active_routine"
	outcomeRoutineNotFound = "routine_not_found"
	outcomeError           = "error"
)
