package proxy_test

import (
	"reflect"

	"github.com/rise-and-shine/callproxy/proxy"
)

// codePtr identifies a function value by its code pointer; Go funcs are not comparable.
// Every reflect.MakeFunc result shares one code pointer, so it cannot tell two wrappers apart.
func codePtr(fn any) uintptr {
	return reflect.ValueOf(fn).Pointer()
}

// recorder collects events for assertions.
type recorder struct {
	events []proxy.CallEvent
}

func (r *recorder) OnCall(e proxy.CallEvent) {
	r.events = append(r.events, e)
}

// service owns a single explicit function-valued field exposed as the "run" slot.
type service struct {
	called     bool
	calledWith []any
	run        func(s *service, n int, tag string) error
}

func (s *service) Slot(name string) (any, bool) {
	if name != "run" {
		return nil, false
	}
	return s.run, true
}

func (s *service) SetSlot(name string, fn any) {
	if name == "run" {
		s.run, _ = fn.(func(*service, int, string) error)
	}
}

func newService() *service {
	return &service{
		run: func(s *service, n int, tag string) error {
			s.called = true
			s.calledWith = []any{n, tag}
			return nil
		},
	}
}
