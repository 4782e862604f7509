//go:build gcloud

package logging

import (
	"context"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel/trace"
)

// gcpTraceAttrs emits the Cloud Logging trace correlation fields when the
// context carries a sampled span.
func gcpTraceAttrs(ctx context.Context, projectID string) []slog.Attr {
	if projectID == "" {
		return nil
	}

	sc := trace.SpanContextFromContext(ctx)
	if !sc.IsValid() {
		return nil
	}

	attrs := []slog.Attr{
		slog.String("logging.googleapis.com/trace",
			fmt.Sprintf("projects/%s/traces/%s", projectID, sc.TraceID().String())),
		slog.String("logging.googleapis.com/spanId", sc.SpanID().String()),
	}
	if sc.IsSampled() {
		attrs = append(attrs, slog.Bool("logging.googleapis.com/trace_sampled", true))
	}
	return attrs
}
