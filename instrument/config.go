package instrument

import (
	"github.com/rise-and-shine/callproxy/observability/logger"
	"github.com/rise-and-shine/callproxy/observability/tracing"
)

// Config selects the listeners attached to wrappers and configures their backends.
type Config struct {
	ServiceName    string `yaml:"service_name" validate:"required"`
	ServiceVersion string `yaml:"service_version" default:"dev"`

	Logger  logger.Config  `yaml:"logger"`
	Tracing tracing.Config `yaml:"tracing"`

	Listeners Listeners `yaml:"listeners"`
}

// Listeners toggles the stock listeners. All are off unless enabled.
type Listeners struct {
	// Log attaches a debug log listener.
	Log bool `yaml:"log" default:"false"`
	// Trace attaches an OpenTelemetry span listener.
	Trace bool `yaml:"trace" default:"false"`
	// Count attaches a go-metrics call counter.
	Count bool `yaml:"count" default:"false"`
	// CounterPrefix prefixes counter names.
	CounterPrefix string `yaml:"counter_prefix" default:"callproxy"`
}
