package metrics

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	cycleMeterName = "scheduler.cycle"
)

type CycleMetrics struct {
	cyclesTotal          metric.Int64Counter
	notificationsPlanned metric.Int64Counter
	deliveriesTotal      metric.Int64Counter
	cycleDuration        metric.Float64Histogram
	dispatchDuration     metric.Float64Histogram
}

func NewCycleMetrics() (*CycleMetrics, error) {
	meter := otel.Meter(cycleMeterName)

	cyclesTotal, err := meter.Int64Counter(
		"scheduler_cycles_total",
		metric.WithDescription("Total number of evaluation cycles"),
		metric.WithUnit("{cycle}"),
	)
	if err != nil {
		return nil, err
	}

	notificationsPlanned, err := meter.Int64Counter(
		"scheduler_notifications_planned_total",
		metric.WithDescription("Total number of planned notifications"),
		metric.WithUnit("{notification}"),
	)
	if err != nil {
		return nil, err
	}

	deliveriesTotal, err := meter.Int64Counter(
		"scheduler_deliveries_total",
		metric.WithDescription("Total number of gateway broadcast attempts"),
		metric.WithUnit("{delivery}"),
	)
	if err != nil {
		return nil, err
	}

	cycleDuration, err := meter.Float64Histogram(
		"scheduler_cycle_duration_seconds",
		metric.WithDescription("Evaluation cycle duration"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(
			0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5,
		),
	)
	if err != nil {
		return nil, err
	}

	dispatchDuration, err := meter.Float64Histogram(
		"scheduler_dispatch_duration_seconds",
		metric.WithDescription("Time spent broadcasting one plan entry"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(
			0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10,
		),
	)
	if err != nil {
		return nil, err
	}

	return &CycleMetrics{
		cyclesTotal:          cyclesTotal,
		notificationsPlanned: notificationsPlanned,
		deliveriesTotal:      deliveriesTotal,
		cycleDuration:        cycleDuration,
		dispatchDuration:     dispatchDuration,
	}, nil
}

func (m *CycleMetrics) RecordCycle(ctx context.Context, outcome string, duration time.Duration) {
	if m == nil {
		return
	}
	m.cyclesTotal.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", outcome)))
	m.cycleDuration.Record(ctx, duration.Seconds())
}

func (m *CycleMetrics) RecordPlanned(ctx context.Context, count int) {
	if m == nil {
		return
	}
	m.notificationsPlanned.Add(ctx, int64(count))
}

func (m *CycleMetrics) RecordDelivery(ctx context.Context, success bool, duration time.Duration) {
	if m == nil {
		return
	}
	status := "success"
	if !success {
		status = "failure"
	}
	m.deliveriesTotal.Add(ctx, 1, metric.WithAttributes(attribute.String("status", status)))
	m.dispatchDuration.Record(ctx, duration.Seconds())
}
