// Package meta carries request metadata through context.
package meta

import "context"

// ContextKey is the type of metadata keys stored in a context.
type ContextKey string

const (
	// TraceID correlates log entries and spans of one logical operation.
	TraceID ContextKey = "trace_id"

	// ServiceName identifies the running service.
	ServiceName ContextKey = "service_name"

	// ServiceVersion is the version of the running service.
	ServiceVersion ContextKey = "service_version"
)

// InjectMetaToContext returns a context carrying the non-empty values of data.
func InjectMetaToContext(ctx context.Context, data map[ContextKey]string) context.Context {
	for k, v := range data {
		if v != "" {
			ctx = context.WithValue(ctx, k, v) //nolint:fatcontext // finite number of keys
		}
	}
	return ctx
}

// ExtractMetaFromContext returns the known, non-empty string metadata stored in ctx.
func ExtractMetaFromContext(ctx context.Context) map[ContextKey]string {
	data := make(map[ContextKey]string)
	for _, k := range []ContextKey{TraceID, ServiceName, ServiceVersion} {
		if v, ok := ctx.Value(k).(string); ok && v != "" {
			data[k] = v
		}
	}
	return data
}
