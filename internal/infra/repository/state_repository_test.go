package repository

import (
	"context"
	"testing"

	"github.com/JulianRR24/planningweb-push-scheduler/internal/domain"
	"github.com/JulianRR24/planningweb-push-scheduler/internal/testutil"
)

const routinesJSON = `[
	{
		"id": "r1",
		"name": "Semana",
		"days": {
			"mon": [{"id": "e1", "title": "Gym", "start": "08:00", "end": "09:00"}],
			"fri": [{"id": "e2", "title": "Clase", "start": "18:30", "end": "20:00"}]
		}
	},
	{"id": "r2", "name": "Vacaciones", "days": {}}
]`

func TestSnapshotSuccess(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()
	client, cleanup := testutil.SetupStateStore(ctx, t)
	defer cleanup()

	repo := NewStateRepository(client)

	seed := map[string]string{
		"planningweb:activeRoutineId":   "r1",
		"planningweb:routines":          routinesJSON,
		"planningweb:notifyBeforeStart": "15",
		"planningweb:notifyBeforeEnd":   "5",
		"planningweb:device:d1":         `{"playerId":"p1","token":"tok-1","lastActive":1715600000000,"platform":"MacIntel","userAgent":"Mozilla/5.0"}`,
		"planningweb:device:d2":         `{"playerId":"p2","lastActive":1715600300000,"platform":"Linux x86_64"}`,
	}
	testutil.SeedState(ctx, t, client, seed)

	snap, err := repo.Snapshot(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if snap.ActiveRoutineID != "r1" {
		t.Errorf("expected ActiveRoutineID r1, got %s", snap.ActiveRoutineID)
	}
	if len(snap.Routines) != 2 {
		t.Fatalf("expected 2 routines, got %d", len(snap.Routines))
	}
	if snap.Notify.LeadStartMinutes != 15 || snap.Notify.LeadEndMinutes != 5 {
		t.Errorf("expected leads 15/5, got %d/%d", snap.Notify.LeadStartMinutes, snap.Notify.LeadEndMinutes)
	}
	if len(snap.Devices) != 2 {
		t.Fatalf("expected 2 devices, got %d", len(snap.Devices))
	}
	for _, d := range snap.Devices {
		if d.LastActive.IsZero() {
			t.Errorf("device %s lost its lastActive timestamp", d.PlayerID)
		}
	}

	routine, err := snap.ActiveRoutine()
	if err != nil {
		t.Fatalf("failed to resolve active routine: %v", err)
	}
	events := routine.EventsOn(domain.DayMon)
	if len(events) != 1 || events[0].Title != "Gym" {
		t.Errorf("unexpected monday events: %v", events)
	}
}

func TestSnapshotEmptyStore(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()
	client, cleanup := testutil.SetupStateStore(ctx, t)
	defer cleanup()

	repo := NewStateRepository(client)

	snap, err := repo.Snapshot(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if snap.ActiveRoutineID != "" {
		t.Errorf("expected empty ActiveRoutineID, got %s", snap.ActiveRoutineID)
	}
	if len(snap.Routines) != 0 {
		t.Errorf("expected no routines, got %d", len(snap.Routines))
	}
	if len(snap.Devices) != 0 {
		t.Errorf("expected no devices, got %d", len(snap.Devices))
	}
	if snap.Notify != domain.DefaultNotifyConfig() {
		t.Errorf("expected default notify config, got %+v", snap.Notify)
	}
}

func TestSnapshotDoubleEncodedValues(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()
	client, cleanup := testutil.SetupStateStore(ctx, t)
	defer cleanup()

	repo := NewStateRepository(client)

	// Older app versions JSON-stringified values before writing them.
	seed := map[string]string{
		"planningweb:activeRoutineId":   `"r1"`,
		"planningweb:routines":          `"[{\"id\": \"r1\", \"days\": {\"tue\": [{\"id\": \"e1\", \"title\": \"Yoga\", \"start\": \"07:00\", \"end\": \"08:00\"}]}}]"`,
		"planningweb:notifyBeforeStart": `"20"`,
		"planningweb:device:d1":         `"{\"playerId\": \"p1\"}"`,
	}
	testutil.SeedState(ctx, t, client, seed)

	snap, err := repo.Snapshot(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if snap.ActiveRoutineID != "r1" {
		t.Errorf("expected ActiveRoutineID r1, got %q", snap.ActiveRoutineID)
	}
	if len(snap.Routines) != 1 {
		t.Fatalf("expected 1 routine, got %d", len(snap.Routines))
	}
	if snap.Notify.LeadStartMinutes != 20 {
		t.Errorf("expected LeadStartMinutes 20, got %d", snap.Notify.LeadStartMinutes)
	}
	if len(snap.Devices) != 1 || snap.Devices[0].PlayerID != "p1" {
		t.Errorf("unexpected devices: %v", snap.Devices)
	}
}

func TestSnapshotBadLeadValuesFallBackToDefaults(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()
	client, cleanup := testutil.SetupStateStore(ctx, t)
	defer cleanup()

	repo := NewStateRepository(client)

	tests := []struct {
		name  string
		start string
		end   string
	}{
		{name: "non-numeric", start: "soon", end: "later"},
		{name: "negative", start: "-3", end: "-1"},
		{name: "empty", start: "", end: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := client.Set(ctx, "planningweb:notifyBeforeStart", tt.start, 0).Err(); err != nil {
				t.Fatalf("failed to seed: %v", err)
			}
			if err := client.Set(ctx, "planningweb:notifyBeforeEnd", tt.end, 0).Err(); err != nil {
				t.Fatalf("failed to seed: %v", err)
			}

			snap, err := repo.Snapshot(ctx)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if snap.Notify != domain.DefaultNotifyConfig() {
				t.Errorf("expected default leads, got %+v", snap.Notify)
			}
		})
	}
}

func TestSnapshotSkipsMalformedDevices(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()
	client, cleanup := testutil.SetupStateStore(ctx, t)
	defer cleanup()

	repo := NewStateRepository(client)

	seed := map[string]string{
		"planningweb:device:good":   `{"playerId": "p1"}`,
		"planningweb:device:broken": `{not json`,
	}
	testutil.SeedState(ctx, t, client, seed)

	snap, err := repo.Snapshot(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(snap.Devices) != 1 || snap.Devices[0].PlayerID != "p1" {
		t.Errorf("expected only the valid device, got %v", snap.Devices)
	}
}

func TestSnapshotMalformedRoutinesIsError(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()
	client, cleanup := testutil.SetupStateStore(ctx, t)
	defer cleanup()

	repo := NewStateRepository(client)

	if err := client.Set(ctx, "planningweb:routines", "{broken", 0).Err(); err != nil {
		t.Fatalf("failed to seed: %v", err)
	}

	if _, err := repo.Snapshot(ctx); err != ErrInvalidRoutineData {
		t.Errorf("expected ErrInvalidRoutineData, got %v", err)
	}
}
