//go:build gcloud

package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/JulianRR24/planningweb-push-scheduler/internal/config"
	"github.com/JulianRR24/planningweb-push-scheduler/internal/observability"
	"github.com/JulianRR24/planningweb-push-scheduler/internal/observability/logging"
	"github.com/JulianRR24/planningweb-push-scheduler/internal/runner"
	"github.com/JulianRR24/planningweb-push-scheduler/internal/service/cycle"
)

func initObservability(ctx context.Context, cfg *config.Config) (*observability.Resources, error) {
	serviceName := os.Getenv("K_SERVICE")
	if serviceName == "" {
		serviceName = "push-scheduler"
	}

	env := logging.EnvProd
	if e := os.Getenv("ENV"); e != "" {
		env = logging.Environment(e)
	}

	projectID := os.Getenv("GOOGLE_CLOUD_PROJECT")
	if projectID == "" {
		projectID = os.Getenv("GCLOUD_PROJECT_ID")
	}

	return observability.Init(ctx, observability.Config{
		ServiceInfo: logging.ServiceInfo{
			Name:     serviceName,
			Version:  Version,
			Revision: os.Getenv("K_REVISION"),
		},
		Environment:  env,
		LogLevel:     cfg.LogLevel,
		GCPProjectID: projectID,
		SamplingRate: 1.0,
	})
}

// Cloud Scheduler invokes the trigger endpoint every minute, so the
// in-process ticker stays off unless explicitly enabled.
func initTicker(cycleService *cycle.Service, cfg *config.Config) (*runner.Ticker, error) {
	if !cfg.Ticker.Enabled {
		return nil, nil
	}
	slog.Warn("in-process ticker enabled alongside Cloud Scheduler, expect duplicate cycles")
	return runner.NewTicker(cycleService, cfg.Ticker.Schedule)
}
