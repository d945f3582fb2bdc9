// Package listener provides ready-made call listeners for proxy wrappers.
//
// Each listener observes a proxy.CallEvent without touching the intercepted call: the logger
// listener writes a structured entry, the tracing listener records a span event, and the
// counter listener increments a go-metrics counter per intercepted target.
package listener

import (
	"context"

	"github.com/rise-and-shine/callproxy/proxy"
	"github.com/samber/lo"
)

// Observable is the registration surface shared by proxy wrappers.
type Observable interface {
	On(l proxy.Listener) *proxy.Subscription
}

// Attach registers every listener on w in the given order and returns their subscriptions.
func Attach(w Observable, listeners ...proxy.Listener) []*proxy.Subscription {
	return lo.Map(listeners, func(l proxy.Listener, _ int) *proxy.Subscription {
		return w.On(l)
	})
}

// contextArg returns the first context.Context among the call arguments.
func contextArg(args []any) (context.Context, bool) {
	found, ok := lo.Find(args, func(a any) bool {
		_, isCtx := a.(context.Context)
		return isCtx
	})
	if !ok {
		return nil, false
	}

	ctx, _ := found.(context.Context)
	return ctx, true
}
