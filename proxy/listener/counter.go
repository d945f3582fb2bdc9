package listener

import (
	metrics "github.com/rcrowley/go-metrics"
	"github.com/rise-and-shine/callproxy/proxy"
)

// CounterListener counts intercepted calls per target in a go-metrics registry.
// Counter names are "<prefix>.<target>".
type CounterListener struct {
	registry metrics.Registry
	prefix   string
}

// NewCounter returns a counter listener. A nil registry selects metrics.DefaultRegistry.
func NewCounter(registry metrics.Registry, prefix string) *CounterListener {
	if registry == nil {
		registry = metrics.DefaultRegistry
	}
	return &CounterListener{registry: registry, prefix: prefix}
}

// OnCall implements proxy.Listener.
func (c *CounterListener) OnCall(e proxy.CallEvent) {
	metrics.GetOrRegisterCounter(c.name(e.Target()), c.registry).Inc(1)
}

// Count returns the number of calls counted for target.
func (c *CounterListener) Count(target string) int64 {
	counter, ok := c.registry.Get(c.name(target)).(metrics.Counter)
	if !ok {
		return 0
	}
	return counter.Count()
}

func (c *CounterListener) name(target string) string {
	if c.prefix == "" {
		return target
	}
	return c.prefix + "." + target
}
