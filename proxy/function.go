package proxy

import (
	"fmt"
	"reflect"

	"github.com/code19m/errx"
)

// FuncWrapper intercepts calls to a standalone function.
//
// The original function is never mutated and stays callable without notifications;
// callers must use Callable at their call sites. There is no Restore.
type FuncWrapper struct {
	*Channel

	original any
	fn       reflect.Value
	callable any
}

// Function wraps fn and returns the wrapper. fn must be a function value;
// a typed nil function is accepted and fails natively on first invocation.
func Function(fn any) (*FuncWrapper, error) {
	v := reflect.ValueOf(fn)
	if v.Kind() != reflect.Func {
		return nil, errx.New("[proxy]: wrap target is not callable",
			errx.WithCode(CodeNotCallable),
			errx.WithDetails(errx.D{"type": fmt.Sprintf("%T", fn)}),
		)
	}

	w := &FuncWrapper{
		Channel:  &Channel{},
		original: fn,
		fn:       v,
	}
	w.callable = reflect.MakeFunc(v.Type(), w.invoke).Interface()

	return w, nil
}

// Typed wraps fn and returns the wrapper together with its callable as F.
func Typed[F any](fn F) (*FuncWrapper, F, error) {
	w, err := Function(fn)
	if err != nil {
		var zero F
		return nil, zero, err
	}

	callable, _ := w.callable.(F)
	return w, callable, nil
}

// Kind implements Wrapper.
func (w *FuncWrapper) Kind() Kind {
	return KindFunction
}

// Original returns the wrapped function.
func (w *FuncWrapper) Original() any {
	return w.original
}

// Callable returns the wrapper function. It has the same type as the original.
func (w *FuncWrapper) Callable() any {
	return w.callable
}

func (w *FuncWrapper) invoke(in []reflect.Value) []reflect.Value {
	w.Emit(CallEvent{
		Kind:      KindFunction,
		Function:  w.original,
		Arguments: arguments(w.fn.Type(), in),
	})

	return forward(w.fn, in)
}
