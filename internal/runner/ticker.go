package runner

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/JulianRR24/planningweb-push-scheduler/internal/service/cycle"
)

// tickTimeout bounds one cycle so a stuck gateway cannot pile up runs.
const tickTimeout = 55 * time.Second

// Ticker drives evaluation cycles from an in-process cron schedule, for
// deployments without an external per-minute scheduler.
type Ticker struct {
	cron         *cron.Cron
	cycleService *cycle.Service
	schedule     string
}

func NewTicker(cycleService *cycle.Service, schedule string) (*Ticker, error) {
	t := &Ticker{
		cron:         cron.New(),
		cycleService: cycleService,
		schedule:     schedule,
	}

	if _, err := t.cron.AddFunc(schedule, t.tick); err != nil {
		return nil, fmt.Errorf("invalid ticker schedule %q: %w", schedule, err)
	}

	return t, nil
}

func (t *Ticker) Start() {
	t.cron.Start()
	slog.Info("ticker started",
		slog.String("schedule", t.schedule),
	)
}

// Stop halts scheduling and waits for an in-flight cycle to finish, bounded
// by the caller's context.
func (t *Ticker) Stop(ctx context.Context) error {
	stopCtx := t.cron.Stop()
	select {
	case <-stopCtx.Done():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (t *Ticker) tick() {
	ctx, cancel := context.WithTimeout(context.Background(), tickTimeout)
	defer cancel()

	if _, err := t.cycleService.Run(ctx, time.Now()); err != nil {
		slog.ErrorContext(ctx, "scheduled cycle failed",
			slog.String("error", err.Error()),
		)
	}
}
