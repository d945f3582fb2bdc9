package tracing

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rise-and-shine/callproxy/meta"
	"go.opentelemetry.io/otel/trace"
)

// TraceID returns the trace id to correlate work done under ctx.
// It prefers the active span, then meta.TraceID, and falls back to a generated "man-" id.
func TraceID(ctx context.Context) string {
	if traceID := trace.SpanFromContext(ctx).SpanContext().TraceID(); traceID.IsValid() {
		return traceID.String()
	}

	if v, ok := meta.ExtractMetaFromContext(ctx)[meta.TraceID]; ok {
		return v
	}

	return fmt.Sprintf("man-%s", uuid.New().String())
}
