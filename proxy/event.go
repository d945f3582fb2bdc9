package proxy

import (
	"reflect"
	"runtime"
)

// Kind tells which interception strategy produced a CallEvent.
type Kind uint8

const (
	// KindMethod marks events emitted by a MethodWrapper.
	KindMethod Kind = iota + 1
	// KindFunction marks events emitted by a FuncWrapper.
	KindFunction
)

func (k Kind) String() string {
	switch k {
	case KindMethod:
		return "method"
	case KindFunction:
		return "function"
	default:
		return "unknown"
	}
}

// CallEvent describes a single intercepted invocation.
//
// It is a tagged union over Kind: method events carry Receiver and MethodName,
// function events carry Function. Arguments is shared by both shapes and holds the
// call arguments in call-site order (the receiver excluded).
type CallEvent struct {
	Kind Kind

	// Receiver is the receiver passed at invocation time (method events only).
	Receiver any
	// MethodName is the slot name the wrapper is installed under (method events only).
	MethodName string

	// Function is the original callable (function events only).
	Function any

	Arguments []any
}

// Target returns a human readable name of the intercepted callable.
// For method events it is the slot name, for function events the runtime function name.
func (e CallEvent) Target() string {
	if e.Kind == KindMethod {
		return e.MethodName
	}
	return funcName(e.Function)
}

func funcName(fn any) string {
	v := reflect.ValueOf(fn)
	if v.Kind() != reflect.Func || v.IsNil() {
		return "<nil>"
	}
	if f := runtime.FuncForPC(v.Pointer()); f != nil {
		return f.Name()
	}
	return v.Type().String()
}
