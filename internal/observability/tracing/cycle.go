package tracing

import (
	"context"
	"net/http"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

const cycleTracerName = "github.com/JulianRR24/planningweb-push-scheduler/internal/service/cycle"

func CycleTracer() trace.Tracer {
	return otel.Tracer(cycleTracerName)
}

func StartCycleSpan(ctx context.Context, runID string, at time.Time) (context.Context, trace.Span) {
	return CycleTracer().Start(ctx, "scheduler.cycle",
		trace.WithAttributes(
			attribute.String("run_id", runID),
			attribute.String("cycle.at", at.UTC().Format(time.RFC3339)),
		),
	)
}

func StartSnapshotSpan(ctx context.Context) (context.Context, trace.Span) {
	return CycleTracer().Start(ctx, "scheduler.snapshot",
		trace.WithAttributes(
			attribute.String("db.system", "redis"),
		),
	)
}

func StartDispatchSpan(ctx context.Context, entryID string, recipientCount int) (context.Context, trace.Span) {
	return CycleTracer().Start(ctx, "scheduler.dispatch",
		trace.WithAttributes(
			attribute.String("entry_id", entryID),
			attribute.Int("recipient_count", recipientCount),
		),
	)
}

func StartGatewaySpan(ctx context.Context, url string) (context.Context, trace.Span) {
	return CycleTracer().Start(ctx, "scheduler.gateway.send",
		trace.WithAttributes(
			attribute.String("url", url),
		),
		trace.WithSpanKind(trace.SpanKindClient),
	)
}

func RecordCycleResult(span trace.Span, planned, sent, failed int, outcome string, err error) {
	span.SetAttributes(
		attribute.Int("cycle.planned", planned),
		attribute.Int("cycle.sent", sent),
		attribute.Int("cycle.failed", failed),
		attribute.String("cycle.outcome", outcome),
	)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return
	}
	span.SetStatus(codes.Ok, "")
}

func RecordDispatchResult(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return
	}
	span.SetStatus(codes.Ok, "")
}

// InjectToHTTPRequest propagates the current trace context onto an outbound
// request.
func InjectToHTTPRequest(ctx context.Context, req *http.Request) {
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))
}
