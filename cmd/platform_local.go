//go:build !gcloud

package main

import (
	"context"
	"os"

	"github.com/JulianRR24/planningweb-push-scheduler/internal/config"
	"github.com/JulianRR24/planningweb-push-scheduler/internal/observability"
	"github.com/JulianRR24/planningweb-push-scheduler/internal/observability/logging"
	"github.com/JulianRR24/planningweb-push-scheduler/internal/runner"
	"github.com/JulianRR24/planningweb-push-scheduler/internal/service/cycle"
)

func initObservability(ctx context.Context, cfg *config.Config) (*observability.Resources, error) {
	serviceName := os.Getenv("SERVICE_NAME")
	if serviceName == "" {
		serviceName = "push-scheduler"
	}

	env := logging.EnvDev
	if e := os.Getenv("ENV"); e != "" {
		env = logging.Environment(e)
	}

	return observability.Init(ctx, observability.Config{
		ServiceInfo: logging.ServiceInfo{
			Name:     serviceName,
			Version:  Version,
			Revision: "",
		},
		Environment:  env,
		LogLevel:     cfg.LogLevel,
		GCPProjectID: "",
		SamplingRate: 1.0,
	})
}

// Local deployments have no external per-minute scheduler, so the in-process
// ticker runs whenever it is enabled.
func initTicker(cycleService *cycle.Service, cfg *config.Config) (*runner.Ticker, error) {
	if !cfg.Ticker.Enabled {
		return nil, nil
	}
	return runner.NewTicker(cycleService, cfg.Ticker.Schedule)
}
