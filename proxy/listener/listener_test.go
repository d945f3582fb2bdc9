package listener_test

import (
	"context"
	"testing"

	metrics "github.com/rcrowley/go-metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/rise-and-shine/callproxy/meta"
	"github.com/rise-and-shine/callproxy/observability/logger"
	"github.com/rise-and-shine/callproxy/proxy"
	"github.com/rise-and-shine/callproxy/proxy/listener"
)

type account struct {
	balance int
}

func newAccountTable(acc *account) *proxy.Table {
	o := proxy.NewTable()
	o.SetSlot("deposit", func(_ *proxy.Table, _ context.Context, amount int) int {
		acc.balance += amount
		return acc.balance
	})
	return o
}

func deposit(t *testing.T, o *proxy.Table) func(*proxy.Table, context.Context, int) int {
	t.Helper()

	fn, ok := proxy.Lookup[func(*proxy.Table, context.Context, int) int](o, "deposit")
	require.True(t, ok)
	return fn
}

func TestAttach(t *testing.T) {
	// Arrange
	w, wrapped, err := proxy.Typed(func(int) {})
	require.NoError(t, err)

	var order []string
	first := proxy.ListenerFunc(func(proxy.CallEvent) { order = append(order, "first") })
	second := proxy.ListenerFunc(func(proxy.CallEvent) { order = append(order, "second") })

	// Act
	subs := listener.Attach(w, first, second)
	wrapped(1)

	// Assert
	assert.Len(t, subs, 2)
	assert.Equal(t, 2, w.ListenerCount())
	assert.Equal(t, []string{"first", "second"}, order)
}

func TestLoggerListener(t *testing.T) {
	// Arrange
	core, logs := observer.New(zapcore.DebugLevel)
	acc := &account{}
	o := newAccountTable(acc)

	w, err := proxy.Wrap(o, "deposit")
	require.NoError(t, err)
	w.On(listener.NewLogger(logger.FromZap(zap.New(core))))

	ctx := meta.InjectMetaToContext(t.Context(), map[meta.ContextKey]string{meta.TraceID: "trace-42"})

	// Act
	got := deposit(t, o)(o, ctx, 10)

	// Assert
	assert.Equal(t, 10, got)
	require.Equal(t, 1, logs.Len())

	entry := logs.All()[0]
	fields := entry.ContextMap()
	assert.Equal(t, "callproxy.listener", entry.LoggerName)
	assert.Equal(t, "call intercepted", entry.Message)
	assert.Equal(t, "method", fields["kind"])
	assert.Equal(t, "deposit", fields["target"])
	assert.Equal(t, "*proxy.Table", fields["receiver"])
	assert.Equal(t, "trace-42", fields["trace_id"])
	assert.Equal(t, []any{"context.Context", "10"}, fields["arguments"])
}

func TestTracingListener(t *testing.T) {
	t.Run("starts a span when the call has no active span", func(t *testing.T) {
		// Arrange
		recorder := tracetest.NewSpanRecorder()
		tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))

		w, wrapped, err := proxy.Typed(func(string, int) {})
		require.NoError(t, err)
		w.On(listener.NewTracing(listener.WithTracerProvider(tp)))

		// Act
		wrapped("a", 1)

		// Assert
		spans := recorder.Ended()
		require.Len(t, spans, 1)
		assert.Contains(t, spans[0].Name(), "TestTracingListener")

		attrs := map[string]any{}
		for _, kv := range spans[0].Attributes() {
			attrs[string(kv.Key)] = kv.Value.AsInterface()
		}
		assert.Equal(t, "function", attrs["callproxy.kind"])
		assert.Equal(t, int64(2), attrs["callproxy.arg_count"])
	})

	t.Run("adds an event to the active span", func(t *testing.T) {
		// Arrange
		recorder := tracetest.NewSpanRecorder()
		tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))

		acc := &account{}
		o := newAccountTable(acc)
		w, err := proxy.Wrap(o, "deposit")
		require.NoError(t, err)
		w.On(listener.NewTracing(listener.WithTracerProvider(tp)))

		ctx, parent := tp.Tracer("test").Start(t.Context(), "parent")

		// Act
		deposit(t, o)(o, ctx, 5)
		parent.End()

		// Assert
		spans := recorder.Ended()
		require.Len(t, spans, 1)
		assert.Equal(t, "parent", spans[0].Name())
		require.Len(t, spans[0].Events(), 1)
		assert.Equal(t, "call", spans[0].Events()[0].Name)
		assert.Equal(t, 5, acc.balance)
	})
}

func TestCounterListener(t *testing.T) {
	// Arrange
	registry := metrics.NewRegistry()
	counter := listener.NewCounter(registry, "calls")

	acc := &account{}
	o := newAccountTable(acc)
	w, err := proxy.Wrap(o, "deposit")
	require.NoError(t, err)
	w.On(counter)

	// Act
	fn := deposit(t, o)
	fn(o, t.Context(), 1)
	fn(o, t.Context(), 2)
	fn(o, t.Context(), 3)

	// Assert
	assert.Equal(t, int64(3), counter.Count("deposit"))
	assert.Equal(t, int64(0), counter.Count("withdraw"))
	assert.NotNil(t, registry.Get("calls.deposit"))
	assert.Equal(t, 6, acc.balance)
}

func TestCounterListener_DefaultRegistry(t *testing.T) {
	counter := listener.NewCounter(nil, "")

	counter.OnCall(proxy.CallEvent{Kind: proxy.KindMethod, MethodName: "listener_test_default"})

	assert.Equal(t, int64(1), counter.Count("listener_test_default"))
	metrics.DefaultRegistry.Unregister("listener_test_default")
}

func TestLoggerListener_GlobalFallback(t *testing.T) {
	l := listener.NewLogger(nil)

	assert.NotPanics(t, func() {
		l.OnCall(proxy.CallEvent{Kind: proxy.KindFunction, Arguments: []any{struct{}{}}})
	})
}
