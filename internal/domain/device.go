package domain

import (
	"fmt"
	"strconv"
	"time"
)

// ActivityTime is the app's lastActive timestamp. The PWA writes it as
// epoch milliseconds (Date.now()); older records carry an RFC3339 string.
// Both decode into the embedded time.Time.
type ActivityTime struct {
	time.Time
}

func (t *ActivityTime) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" || s == `""` {
		return nil
	}
	if len(s) > 0 && s[0] == '"' {
		return t.Time.UnmarshalJSON(data)
	}

	millis, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid activity timestamp %s", s)
	}
	t.Time = time.UnixMilli(millis).UTC()
	return nil
}

// Device is one registered push subscription written by the PWA under
// planningweb:device:<deviceId>. PlayerID is the opaque OneSignal
// subscription id used for delivery; extra registration fields (token,
// userAgent) are ignored.
type Device struct {
	PlayerID   string       `json:"playerId"`
	LastActive ActivityTime `json:"lastActive,omitzero"`
	Platform   string       `json:"platform,omitempty"`
}

// RecipientSet returns the deduplicated player ids across all devices,
// preserving first-seen order. Several device records may share one player
// id when a browser re-registers.
func RecipientSet(devices []Device) []string {
	seen := make(map[string]struct{}, len(devices))
	recipients := make([]string, 0, len(devices))

	for _, d := range devices {
		if d.PlayerID == "" {
			continue
		}
		if _, ok := seen[d.PlayerID]; ok {
			continue
		}
		seen[d.PlayerID] = struct{}{}
		recipients = append(recipients, d.PlayerID)
	}

	return recipients
}
