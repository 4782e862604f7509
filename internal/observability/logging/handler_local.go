//go:build !gcloud

package logging

import (
	"context"
	"log/slog"
)

// Cloud Logging trace correlation only applies to gcloud builds; local
// records carry no extra attrs.
func gcpTraceAttrs(_ context.Context, _ string) []slog.Attr {
	return nil
}
