package logging

import (
	"context"
	"log/slog"
	"os"
)

// Environment selects log formatting and trace correlation behavior.
type Environment string

const (
	EnvDev  Environment = "dev"
	EnvProd Environment = "prod"
)

// Module tags log records with the subsystem that emitted them.
type Module string

// ServiceInfo identifies the running service in every log record.
type ServiceInfo struct {
	Name     string
	Version  string
	Revision string
}

type Config struct {
	Level       slog.Level
	Environment Environment
	Service     ServiceInfo
	// GCPProjectID enables trace-id correlation attrs on gcloud builds.
	GCPProjectID string
}

// NewHandler returns a JSON slog handler carrying service identity attrs
// and, on gcloud builds, GCP trace correlation fields per record.
func NewHandler(cfg Config) slog.Handler {
	base := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.Level,
	})

	attrs := []slog.Attr{
		slog.String("service.name", cfg.Service.Name),
		slog.String("environment", string(cfg.Environment)),
	}
	if cfg.Service.Version != "" {
		attrs = append(attrs, slog.String("service.version", cfg.Service.Version))
	}
	if cfg.Service.Revision != "" {
		attrs = append(attrs, slog.String("service.revision", cfg.Service.Revision))
	}

	return &handler{
		Handler:      base.WithAttrs(attrs),
		gcpProjectID: cfg.GCPProjectID,
	}
}

type handler struct {
	slog.Handler
	gcpProjectID string
}

func (h *handler) Handle(ctx context.Context, rec slog.Record) error {
	if attrs := gcpTraceAttrs(ctx, h.gcpProjectID); len(attrs) > 0 {
		rec.AddAttrs(attrs...)
	}
	return h.Handler.Handle(ctx, rec)
}

func (h *handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &handler{Handler: h.Handler.WithAttrs(attrs), gcpProjectID: h.gcpProjectID}
}

func (h *handler) WithGroup(name string) slog.Handler {
	return &handler{Handler: h.Handler.WithGroup(name), gcpProjectID: h.gcpProjectID}
}
