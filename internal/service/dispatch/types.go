package dispatch

import "github.com/JulianRR24/planningweb-push-scheduler/internal/domain"

// Result is the delivery outcome for one plan entry, including the raw
// gateway response for observability.
type Result struct {
	EntryID string                 `json:"entry_id"`
	Title   string                 `json:"title"`
	Success bool                   `json:"success"`
	Error   string                 `json:"error,omitempty"`
	Gateway domain.GatewayResponse `json:"gateway,omitempty"`
}
