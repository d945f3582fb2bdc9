package proxy

import (
	"fmt"
	"reflect"

	"github.com/code19m/errx"
)

// MethodWrapper intercepts calls made through a named slot of an Owner.
//
// The slot function takes its receiver as the first parameter, the shape of a Go method
// expression such as (*Counter).Inc. The wrapper reads the receiver from that argument at
// call time and forwards it unchanged to the original.
type MethodWrapper struct {
	*Channel

	owner    Owner
	name     string
	original any
	fn       reflect.Value
	callable any
}

// Method replaces owner's slot name with an intercepting wrapper and returns it.
//
// The slot function must declare the receiver as its first parameter, so a method taking no
// arguments is stored as func(*T) rather than func(); other shapes fail with CodeNoReceiver.
func Method(owner Owner, name string) (*MethodWrapper, error) {
	if isNilOwner(owner) {
		return nil, errx.New("[proxy]: owner is nil", errx.WithCode(CodeInvalidOwner))
	}

	original, ok := owner.Slot(name)
	if !ok {
		return nil, errx.New("[proxy]: slot not found",
			errx.WithCode(CodeSlotNotFound),
			errx.WithDetails(errx.D{"slot": name}),
		)
	}

	v := reflect.ValueOf(original)
	if v.Kind() != reflect.Func {
		return nil, errx.New("[proxy]: slot is not callable",
			errx.WithCode(CodeNotCallable),
			errx.WithDetails(errx.D{"slot": name, "type": fmt.Sprintf("%T", original)}),
		)
	}

	t := v.Type()
	if t.NumIn() == 0 || (t.NumIn() == 1 && t.IsVariadic()) {
		return nil, errx.New("[proxy]: slot function has no receiver parameter",
			errx.WithCode(CodeNoReceiver),
			errx.WithDetails(errx.D{"slot": name, "type": t.String()}),
		)
	}

	w := &MethodWrapper{
		Channel:  &Channel{},
		owner:    owner,
		name:     name,
		original: original,
		fn:       v,
	}
	w.callable = reflect.MakeFunc(t, w.invoke).Interface()

	owner.SetSlot(name, w.callable)

	return w, nil
}

// Kind implements Wrapper.
func (w *MethodWrapper) Kind() Kind {
	return KindMethod
}

// Owner returns the object whose slot was replaced.
func (w *MethodWrapper) Owner() Owner {
	return w.owner
}

// Name returns the slot name the wrapper is installed under.
func (w *MethodWrapper) Name() string {
	return w.name
}

// Original returns the callable that was in the slot at wrap time.
func (w *MethodWrapper) Original() any {
	return w.original
}

// Callable returns the wrapper function installed in the slot.
func (w *MethodWrapper) Callable() any {
	return w.callable
}

// Restore puts the original callable back into the owner's slot.
// Listeners stay registered and still fire for anyone invoking Callable directly.
func (w *MethodWrapper) Restore() {
	w.owner.SetSlot(w.name, w.original)
}

func (w *MethodWrapper) invoke(in []reflect.Value) []reflect.Value {
	args := arguments(w.fn.Type(), in)

	w.Emit(CallEvent{
		Kind:       KindMethod,
		Receiver:   args[0],
		MethodName: w.name,
		Arguments:  args[1:],
	})

	return forward(w.fn, in)
}

func isNilOwner(owner Owner) bool {
	if owner == nil {
		return true
	}
	v := reflect.ValueOf(owner)
	return v.Kind() == reflect.Pointer && v.IsNil()
}
