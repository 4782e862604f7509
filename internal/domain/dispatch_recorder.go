package domain

import (
	"context"
	"time"
)

// DispatchRecord captures the outcome of one planned notification within a
// cycle, for offline analysis of delivery behavior.
type DispatchRecord struct {
	RunID          string
	CycleTime      time.Time
	EntryID        string
	RecipientCount int
	Success        bool
	Error          string
}

// DispatchRecorder persists dispatch records outside the request path.
// Recording failures are logged, never surfaced to the cycle.
type DispatchRecorder interface {
	RecordCycle(ctx context.Context, records []DispatchRecord) error
	Flush(ctx context.Context) error
	Close() error
}
