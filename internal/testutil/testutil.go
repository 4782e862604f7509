package testutil

import (
	"context"
	"testing"

	"github.com/redis/go-redis/v9"
	redismodule "github.com/testcontainers/testcontainers-go/modules/redis"
)

// SetupStateStore starts a throwaway redis container standing in for the
// store the PlanningWeb app writes to, and returns a connected client. Tests
// are skipped when no container runtime is available.
func SetupStateStore(ctx context.Context, t *testing.T) (*redis.Client, func()) {
	t.Helper()

	defer func() {
		if r := recover(); r != nil {
			t.Skipf("failed to start redis container: %v", r)
		}
	}()

	container, err := redismodule.Run(ctx, "redis:8-alpine")
	if err != nil {
		t.Skipf("failed to start redis container: %v", err)
	}

	endpoint, err := container.Endpoint(ctx, "")
	if err != nil {
		t.Skipf("failed to get redis endpoint: %v", err)
	}

	client := redis.NewClient(&redis.Options{
		Addr: endpoint,
	})

	cleanup := func() {
		if err := client.Close(); err != nil {
			t.Logf("failed to close redis client: %v", err)
		}

		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate redis container: %v", err)
		}
	}

	return client, cleanup
}

// SeedState writes raw key-value pairs the way the app would, failing the
// test on any write error.
func SeedState(ctx context.Context, t *testing.T, client *redis.Client, state map[string]string) {
	t.Helper()

	for k, v := range state {
		if err := client.Set(ctx, k, v, 0).Err(); err != nil {
			t.Fatalf("failed to seed %s: %v", k, err)
		}
	}
}
