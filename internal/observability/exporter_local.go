//go:build !gcloud

package observability

import (
	"context"

	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// newMetricReader exports over OTLP/HTTP when an endpoint is configured;
// without one, metrics stay in-process only.
func newMetricReader(ctx context.Context, _ Config) (sdkmetric.Reader, error) {
	if !otlpEndpointConfigured() {
		return nil, nil
	}

	exporter, err := otlpmetrichttp.New(ctx)
	if err != nil {
		return nil, err
	}
	return sdkmetric.NewPeriodicReader(exporter), nil
}

func newSpanExporter(ctx context.Context, _ Config) (sdktrace.SpanExporter, error) {
	if !otlpEndpointConfigured() {
		return nil, nil
	}

	return otlptracehttp.New(ctx)
}
