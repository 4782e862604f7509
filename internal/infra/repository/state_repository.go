package repository

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/JulianRR24/planningweb-push-scheduler/internal/domain"
)

// Keys written by the PlanningWeb app. The engine only reads them.
const (
	activeRoutineKey     = "planningweb:activeRoutineId"
	routinesKey          = "planningweb:routines"
	notifyBeforeStartKey = "planningweb:notifyBeforeStart"
	notifyBeforeEndKey   = "planningweb:notifyBeforeEnd"
	deviceKeyPrefix      = "planningweb:device:"
)

type stateRepository struct {
	client *redis.Client
}

func NewStateRepository(client *redis.Client) domain.StateRepository {
	return &stateRepository{
		client: client,
	}
}

// Snapshot fetches the routine state and device registry in one pass. Values
// the app failed to write cleanly degrade to defaults instead of failing the
// cycle; only transport errors are returned.
func (r *stateRepository) Snapshot(ctx context.Context) (*domain.StateSnapshot, error) {
	vals, err := r.client.MGet(ctx, activeRoutineKey, routinesKey, notifyBeforeStartKey, notifyBeforeEndKey).Result()
	if err != nil {
		return nil, err
	}

	snap := &domain.StateSnapshot{
		ActiveRoutineID: decodeString(vals[0]),
		Notify:          domain.DefaultNotifyConfig(),
	}

	if raw, ok := vals[1].(string); ok && raw != "" {
		var routines []domain.Routine
		if err := decodeJSON(raw, &routines); err != nil {
			return nil, ErrInvalidRoutineData
		}
		snap.Routines = routines
	}

	if lead, ok := decodeLead(vals[2]); ok {
		snap.Notify.LeadStartMinutes = lead
	}
	if lead, ok := decodeLead(vals[3]); ok {
		snap.Notify.LeadEndMinutes = lead
	}

	devices, err := r.scanDevices(ctx)
	if err != nil {
		return nil, err
	}
	snap.Devices = devices

	return snap, nil
}

func (r *stateRepository) scanDevices(ctx context.Context) ([]domain.Device, error) {
	keys := make([]string, 0)

	iter := r.client.Scan(ctx, 0, deviceKeyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return nil, err
	}

	if len(keys) == 0 {
		return nil, nil
	}

	vals, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	devices := make([]domain.Device, 0, len(vals))
	for _, v := range vals {
		raw, ok := v.(string)
		if !ok || raw == "" {
			continue
		}
		var d domain.Device
		if err := decodeJSON(raw, &d); err != nil {
			// Malformed registrations are skipped, not fatal.
			continue
		}
		devices = append(devices, d)
	}

	return devices, nil
}

// decodeJSON unmarshals a stored value, unwrapping one level of string
// quoting first when the app double-encoded it.
func decodeJSON(raw string, v any) error {
	if strings.HasPrefix(raw, `"`) {
		var inner string
		if err := json.Unmarshal([]byte(raw), &inner); err == nil {
			raw = inner
		}
	}
	return json.Unmarshal([]byte(raw), v)
}

// decodeString returns a stored string value, stripping JSON quoting when
// present.
func decodeString(v any) string {
	raw, ok := v.(string)
	if !ok {
		return ""
	}
	if strings.HasPrefix(raw, `"`) {
		var inner string
		if err := json.Unmarshal([]byte(raw), &inner); err == nil {
			return inner
		}
	}
	return raw
}

// decodeLead parses a lead-time value. The app has written these both as
// bare numbers and as quoted strings; anything non-numeric or negative is
// rejected so the caller keeps its default.
func decodeLead(v any) (int, bool) {
	raw, ok := v.(string)
	if !ok {
		return 0, false
	}
	raw = strings.Trim(raw, `"`)

	lead, err := strconv.Atoi(raw)
	if err != nil || lead < 0 {
		return 0, false
	}
	return lead, true
}
