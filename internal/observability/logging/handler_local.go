//go:build !gcloud

package logging

import (
	"context"
	"log/slog"
)

// gcpTraceAttrs is a no-op outside Cloud Run; log/trace correlation only
// exists on the gcloud build.
func gcpTraceAttrs(_ context.Context, _ string) []slog.Attr {
	return nil
}
