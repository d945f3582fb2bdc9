package logger_test

import (
	"context"
	"testing"

	"github.com/code19m/errx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/rise-and-shine/callproxy/meta"
	"github.com/rise-and-shine/callproxy/observability/logger"
)

func newObserved() (logger.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return logger.FromZap(zap.New(core)), logs
}

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		cfg     logger.Config
		wantErr bool
	}{
		{name: "disabled", cfg: logger.Config{Disable: true}},
		{name: "json", cfg: logger.Config{Level: "info", Encoding: logger.EncodingJSON}},
		{name: "console", cfg: logger.Config{Level: "debug", Encoding: logger.EncodingConsole}},
		{name: "invalid level", cfg: logger.Config{Level: "loud", Encoding: logger.EncodingJSON}, wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			l, err := logger.New(tc.cfg)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, l)
		})
	}
}

func TestLogger_NamedWith(t *testing.T) {
	// Arrange
	l, logs := newObserved()

	// Act
	l.Named("callproxy").With("target", "run").Info("call intercepted")

	// Assert
	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "callproxy", entry.LoggerName)
	assert.Equal(t, "call intercepted", entry.Message)
	assert.Equal(t, "run", entry.ContextMap()["target"])
}

func TestLogger_Errorx(t *testing.T) {
	l, logs := newObserved()

	l.Errorx(errx.New("slot not found", errx.WithCode("SLOT_NOT_FOUND")))
	l.Warnx(assert.AnError)

	require.Equal(t, 2, logs.Len())
	first := logs.All()[0]
	assert.Equal(t, zapcore.ErrorLevel, first.Level)
	assert.Equal(t, "SLOT_NOT_FOUND", first.ContextMap()["error_code"])

	second := logs.All()[1]
	assert.Equal(t, zapcore.WarnLevel, second.Level)
	assert.NotContains(t, second.ContextMap(), "error_code")
}

func TestLogger_Fatal(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := logger.FromZap(zap.New(core, zap.WithFatalHook(zapcore.WriteThenPanic)))

	assert.Panics(t, func() { l.Fatal("config broken") })
	assert.Panics(t, func() { l.Fatalf("missing %s", "service_name") })
	assert.Panics(t, func() {
		l.Fatalx(errx.New("invalid config", errx.WithCode("INVALID_CONFIG")))
	})

	require.Equal(t, 3, logs.Len())
	for _, entry := range logs.All() {
		assert.Equal(t, zapcore.FatalLevel, entry.Level)
	}
	assert.Equal(t, "missing service_name", logs.All()[1].Message)
	assert.Equal(t, "INVALID_CONFIG", logs.All()[2].ContextMap()["error_code"])
}

func TestLogger_WithContext(t *testing.T) {
	l, logs := newObserved()

	ctx := meta.InjectMetaToContext(context.Background(), map[meta.ContextKey]string{
		meta.TraceID: "trace-123",
	})

	l.WithContext(ctx).Debug("with meta")
	l.WithContext(context.Background()).Debug("without meta")

	require.Equal(t, 2, logs.Len())
	assert.Equal(t, "trace-123", logs.All()[0].ContextMap()["trace_id"])
	assert.Empty(t, logs.All()[1].ContextMap())
}
