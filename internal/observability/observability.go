package observability

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.37.0"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/JulianRR24/planningweb-push-scheduler/internal/observability/logging"
)

type Config struct {
	ServiceInfo  logging.ServiceInfo
	Environment  logging.Environment
	LogLevel     slog.Level
	GCPProjectID string
	SamplingRate float64
}

// Resources bundles the process-wide telemetry providers so main can shut
// them down in one place.
type Resources struct {
	logger         *slog.Logger
	meterProvider  *sdkmetric.MeterProvider
	tracerProvider *sdktrace.TracerProvider
}

// Init configures slog, the OTel meter/tracer providers, and context
// propagation. Exporters are platform-specific: OTLP over HTTP locally,
// Google Cloud exporters on gcloud builds.
func Init(ctx context.Context, cfg Config) (*Resources, error) {
	logger := slog.New(logging.NewHandler(logging.Config{
		Level:        cfg.LogLevel,
		Environment:  cfg.Environment,
		Service:      cfg.ServiceInfo,
		GCPProjectID: cfg.GCPProjectID,
	}))

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(cfg.ServiceInfo.Name),
			semconv.ServiceVersion(cfg.ServiceInfo.Version),
			semconv.DeploymentEnvironmentName(string(cfg.Environment)),
		),
	)
	if err != nil {
		return nil, err
	}

	meterOpts := []sdkmetric.Option{sdkmetric.WithResource(res)}
	metricReader, err := newMetricReader(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if metricReader != nil {
		meterOpts = append(meterOpts, sdkmetric.WithReader(metricReader))
	}
	meterProvider := sdkmetric.NewMeterProvider(meterOpts...)

	sampling := cfg.SamplingRate
	if sampling <= 0 {
		sampling = 1.0
	}
	traceOpts := []sdktrace.TracerProviderOption{
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(sampling))),
	}
	spanExporter, err := newSpanExporter(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if spanExporter != nil {
		traceOpts = append(traceOpts, sdktrace.WithBatcher(spanExporter))
	}
	tracerProvider := sdktrace.NewTracerProvider(traceOpts...)

	otel.SetMeterProvider(meterProvider)
	otel.SetTracerProvider(tracerProvider)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	return &Resources{
		logger:         logger,
		meterProvider:  meterProvider,
		tracerProvider: tracerProvider,
	}, nil
}

func (r *Resources) Logger() *slog.Logger {
	return r.logger
}

func (r *Resources) Shutdown(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var errs []error
	if r.tracerProvider != nil {
		if err := r.tracerProvider.Shutdown(shutdownCtx); err != nil {
			errs = append(errs, err)
		}
	}
	if r.meterProvider != nil {
		if err := r.meterProvider.Shutdown(shutdownCtx); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func otlpEndpointConfigured() bool {
	return os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") != "" ||
		os.Getenv("OTEL_EXPORTER_OTLP_TRACES_ENDPOINT") != "" ||
		os.Getenv("OTEL_EXPORTER_OTLP_METRICS_ENDPOINT") != ""
}
