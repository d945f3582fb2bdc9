package logger

import (
	"context"
	"sync"
	"sync/atomic"
)

//nolint:gochecknoglobals // global logger singleton
var (
	global   atomic.Value // stores Logger
	setOnce  sync.Once
	initOnce sync.Once
)

// SetGlobal configures the global logger. It panics when called more than once
// or when cfg cannot produce a logger.
func SetGlobal(cfg Config) {
	called := false
	setOnce.Do(func() {
		initOnce.Do(func() {})

		l, err := New(cfg)
		if err != nil {
			panic("[logger]: failed to initialize global logger: " + err.Error())
		}
		global.Store(l)
		called = true
	})
	if !called {
		panic("[logger]: SetGlobal can only be called once")
	}
}

// Global returns the global logger, creating a debug console logger on first use
// when SetGlobal was never called.
func Global() Logger {
	initOnce.Do(func() {
		l, err := New(Config{Level: levelDebug, Encoding: EncodingConsole})
		if err != nil {
			panic("[logger]: failed to initialize default logger: " + err.Error())
		}
		global.Store(l)
	})

	l, ok := global.Load().(Logger)
	if !ok {
		panic("[logger]: global contains invalid type")
	}
	return l
}

// Named adds a sub-scope to the global logger's name.
func Named(name string) Logger {
	return Global().Named(name)
}

// With returns a child of the global logger with the given key-value pairs.
func With(keysAndValues ...any) Logger {
	return Global().With(keysAndValues...)
}

// WithContext returns a child of the global logger enriched with ctx metadata.
func WithContext(ctx context.Context) Logger {
	return Global().WithContext(ctx)
}

// Sync flushes the global logger.
func Sync() error {
	return Global().Sync()
}
