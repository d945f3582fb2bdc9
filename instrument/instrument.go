// Package instrument wires configured listeners onto proxy wrappers.
package instrument

import (
	"github.com/code19m/errx"
	metrics "github.com/rcrowley/go-metrics"
	"github.com/rise-and-shine/callproxy/meta"
	"github.com/rise-and-shine/callproxy/observability/logger"
	"github.com/rise-and-shine/callproxy/observability/tracing"
	"github.com/rise-and-shine/callproxy/proxy"
	"github.com/rise-and-shine/callproxy/proxy/listener"
)

// Instrumenter owns the logger, tracer provider and metrics registry behind the stock listeners.
type Instrumenter struct {
	cfg      Config
	logger   logger.Logger
	registry metrics.Registry
	counter  *listener.CounterListener
	shutdown func() error
}

// New records service info, builds the logger and installs the global tracer provider.
func New(cfg Config) (*Instrumenter, error) {
	meta.SetServiceInfo(cfg.ServiceName, cfg.ServiceVersion)

	l, err := logger.New(cfg.Logger)
	if err != nil {
		return nil, errx.Wrap(err)
	}

	shutdown := func() error { return nil }
	if cfg.Listeners.Trace {
		shutdown, err = tracing.InitGlobalTracer(cfg.Tracing)
		if err != nil {
			return nil, errx.Wrap(err)
		}
	}

	registry := metrics.NewRegistry()

	return &Instrumenter{
		cfg:      cfg,
		logger:   l.Named("callproxy").With("service", cfg.ServiceName),
		registry: registry,
		counter:  listener.NewCounter(registry, cfg.Listeners.CounterPrefix),
		shutdown: shutdown,
	}, nil
}

// Listeners returns the enabled listeners in attach order: log, trace, count.
func (i *Instrumenter) Listeners() []proxy.Listener {
	var ls []proxy.Listener
	if i.cfg.Listeners.Log {
		ls = append(ls, listener.NewLogger(i.logger))
	}
	if i.cfg.Listeners.Trace {
		ls = append(ls, listener.NewTracing())
	}
	if i.cfg.Listeners.Count {
		ls = append(ls, i.counter)
	}
	return ls
}

// Attach registers the enabled listeners on w.
func (i *Instrumenter) Attach(w listener.Observable) []*proxy.Subscription {
	return listener.Attach(w, i.Listeners()...)
}

// Logger returns the instrumenter's logger.
func (i *Instrumenter) Logger() logger.Logger {
	return i.logger
}

// Registry returns the metrics registry backing the call counters.
func (i *Instrumenter) Registry() metrics.Registry {
	return i.registry
}

// Calls returns the number of counted calls for target.
func (i *Instrumenter) Calls(target string) int64 {
	return i.counter.Count(target)
}

// Shutdown flushes the tracer provider and the logger.
func (i *Instrumenter) Shutdown() error {
	err := i.shutdown()
	if err != nil {
		return errx.Wrap(err)
	}

	// stdout sync fails on some platforms; it is not worth reporting
	_ = i.logger.Sync()
	return nil
}
