// Package proxy provides transparent call interception for functions and named method slots.
//
// A wrapper forwards every invocation to the original callable with identical arguments,
// receiver and results, and synchronously notifies registered listeners before the original runs.
// It is intended for instrumentation, testing spies and lightweight tracing without touching call sites.
//
// Two strategies are selected by Wrap:
//
//   - Method interception replaces a named slot on an Owner with a wrapper and can be reverted with Restore.
//   - Function interception wraps a standalone function and returns a new function of the same type.
//
// Example:
//
//	o := proxy.NewTable()
//	o.SetSlot("run", func(self *proxy.Table, n int, s string) error { return nil })
//
//	w, err := proxy.Wrap(o, "run")
//	if err != nil {
//	    return err
//	}
//	w.On(proxy.ListenerFunc(func(e proxy.CallEvent) {
//	    fmt.Println(e.MethodName, e.Arguments)
//	}))
//
//	run, _ := proxy.Lookup[func(*proxy.Table, int, string) error](o, "run")
//	_ = run(o, 9, "x") // prints: run [9 x]
package proxy
