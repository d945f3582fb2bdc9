package listener

import (
	"context"

	"github.com/rise-and-shine/callproxy/proxy"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "callproxy/listener"

// TracingListener records intercepted calls in OpenTelemetry.
//
// When the call carries a context.Context with a recording span, a "call" event is added to
// that span. Otherwise a short span named after the target is started and ended immediately.
type TracingListener struct {
	tracer trace.Tracer
}

// TracingOption configures a TracingListener.
type TracingOption func(*tracingOptions)

type tracingOptions struct {
	provider trace.TracerProvider
}

// WithTracerProvider uses tp instead of the global tracer provider.
func WithTracerProvider(tp trace.TracerProvider) TracingOption {
	return func(o *tracingOptions) {
		o.provider = tp
	}
}

// NewTracing returns a tracing listener.
func NewTracing(opts ...TracingOption) *TracingListener {
	o := tracingOptions{provider: otel.GetTracerProvider()}
	for _, opt := range opts {
		opt(&o)
	}

	return &TracingListener{tracer: o.provider.Tracer(tracerName)}
}

// OnCall implements proxy.Listener.
func (t *TracingListener) OnCall(e proxy.CallEvent) {
	attrs := []attribute.KeyValue{
		attribute.String("callproxy.kind", e.Kind.String()),
		attribute.String("callproxy.target", e.Target()),
		attribute.Int("callproxy.arg_count", len(e.Arguments)),
	}

	ctx, ok := contextArg(e.Arguments)
	if !ok {
		ctx = context.Background()
	}

	if span := trace.SpanFromContext(ctx); span.IsRecording() {
		span.AddEvent("call", trace.WithAttributes(attrs...))
		return
	}

	_, span := t.tracer.Start(ctx, e.Target(), trace.WithAttributes(attrs...))
	span.End()
}
