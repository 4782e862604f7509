package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"
	"slices"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"

	"github.com/JulianRR24/planningweb-push-scheduler/internal/observability/logging"
	"github.com/JulianRR24/planningweb-push-scheduler/internal/observability/metrics"
)

type GinConfig struct {
	SkipPaths   []string
	Module      logging.Module
	HTTPMetrics *metrics.HTTPMetrics
}

// Gin extracts any inbound trace context, logs one line per request, and
// records HTTP metrics. Health and probe paths are skipped.
func Gin(cfg GinConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		if slices.Contains(cfg.SkipPaths, c.Request.URL.Path) {
			c.Next()
			return
		}

		ctx := otel.GetTextMapPropagator().Extract(
			c.Request.Context(),
			propagation.HeaderCarrier(c.Request.Header),
		)
		c.Request = c.Request.WithContext(ctx)

		start := time.Now()
		c.Next()
		duration := time.Since(start)

		status := c.Writer.Status()
		cfg.HTTPMetrics.RecordRequest(ctx, c.Request.Method, c.FullPath(), status, duration)

		level := slog.LevelInfo
		if status >= http.StatusInternalServerError {
			level = slog.LevelError
		}
		slog.Default().LogAttrs(ctx, level, "request completed",
			slog.String("module", string(cfg.Module)),
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.Int("status", status),
			slog.Duration("duration", duration),
		)
	}
}

// PanicRecoveryGin converts panics into 500 responses with a logged stack.
func PanicRecoveryGin() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				slog.ErrorContext(c.Request.Context(), "panic recovered",
					slog.Any("panic", r),
					slog.String("path", c.Request.URL.Path),
					slog.String("stack", string(debug.Stack())),
				)
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error": "internal server error",
				})
			}
		}()
		c.Next()
	}
}
