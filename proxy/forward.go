package proxy

import (
	"reflect"

	"github.com/samber/lo"
)

// forward invokes fn with the arguments exactly as the wrapper received them.
// Variadic tails arrive as a slice from reflect.MakeFunc and are passed on as that slice.
func forward(fn reflect.Value, in []reflect.Value) []reflect.Value {
	if fn.Type().IsVariadic() {
		return fn.CallSlice(in)
	}
	return fn.Call(in)
}

// arguments converts wrapper input into call-site ordered values.
// The variadic tail is flattened so the result matches what the call site wrote.
func arguments(t reflect.Type, in []reflect.Value) []any {
	if !t.IsVariadic() || len(in) == 0 {
		return lo.Map(in, func(v reflect.Value, _ int) any { return v.Interface() })
	}

	last := len(in) - 1
	tail := in[last]

	args := make([]any, 0, last+tail.Len())
	for _, v := range in[:last] {
		args = append(args, v.Interface())
	}
	for i := range tail.Len() {
		args = append(args, tail.Index(i).Interface())
	}
	return args
}
