//go:build gcloud

package observability

import (
	"context"
	"time"

	mexporter "github.com/GoogleCloudPlatform/opentelemetry-operations-go/exporter/metric"
	texporter "github.com/GoogleCloudPlatform/opentelemetry-operations-go/exporter/trace"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

func newMetricReader(_ context.Context, cfg Config) (sdkmetric.Reader, error) {
	exporter, err := mexporter.New(mexporter.WithProjectID(cfg.GCPProjectID))
	if err != nil {
		return nil, err
	}
	return sdkmetric.NewPeriodicReader(exporter, sdkmetric.WithInterval(time.Minute)), nil
}

func newSpanExporter(_ context.Context, cfg Config) (sdktrace.SpanExporter, error) {
	return texporter.New(texporter.WithProjectID(cfg.GCPProjectID))
}
