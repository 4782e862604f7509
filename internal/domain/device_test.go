package domain

import (
	"encoding/json"
	"testing"
	"time"
)

func TestDeviceUnmarshal(t *testing.T) {
	tests := []struct {
		name           string
		raw            string
		wantPlayerID   string
		wantLastActive time.Time
	}{
		{
			name:           "registration record as the app writes it",
			raw:            `{"playerId":"p1","token":"tok-1","lastActive":1715600000000,"platform":"MacIntel","userAgent":"Mozilla/5.0"}`,
			wantPlayerID:   "p1",
			wantLastActive: time.UnixMilli(1715600000000).UTC(),
		},
		{
			name:           "lastActive as RFC3339 string",
			raw:            `{"playerId":"p2","lastActive":"2024-05-13T11:33:20Z"}`,
			wantPlayerID:   "p2",
			wantLastActive: time.Date(2024, 5, 13, 11, 33, 20, 0, time.UTC),
		},
		{
			name:         "missing lastActive",
			raw:          `{"playerId":"p3","platform":"web"}`,
			wantPlayerID: "p3",
		},
		{
			name:         "null lastActive",
			raw:          `{"playerId":"p4","lastActive":null}`,
			wantPlayerID: "p4",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Device
			if err := json.Unmarshal([]byte(tt.raw), &d); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if d.PlayerID != tt.wantPlayerID {
				t.Errorf("expected PlayerID %s, got %s", tt.wantPlayerID, d.PlayerID)
			}
			if !d.LastActive.Time.Equal(tt.wantLastActive) {
				t.Errorf("expected LastActive %v, got %v", tt.wantLastActive, d.LastActive.Time)
			}
		})
	}
}

func TestDeviceUnmarshalInvalidLastActive(t *testing.T) {
	var d Device
	if err := json.Unmarshal([]byte(`{"playerId":"p1","lastActive":{"bad":true}}`), &d); err == nil {
		t.Fatal("expected error for non-timestamp lastActive")
	}
}
