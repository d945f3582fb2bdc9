package proxy

import (
	"github.com/code19m/errx"
)

// Wrapper is the common surface of method and function wrappers.
type Wrapper interface {
	// Kind reports the interception strategy.
	Kind() Kind
	// Original returns the wrapped callable.
	Original() any
	// Callable returns the intercepting callable, of the same type as Original.
	Callable() any

	On(l Listener) *Subscription
	AddListener(l Listener) *Subscription
	Once(l Listener) *Subscription
	RemoveListener(s *Subscription) bool
	RemoveAllListeners()
	ListenerCount() int
}

var (
	_ Wrapper = (*MethodWrapper)(nil)
	_ Wrapper = (*FuncWrapper)(nil)
)

// Wrap is the entry point of the package.
//
// With a key, target must be an Owner and the slot under key is intercepted in place
// (the result is a *MethodWrapper). Without a key, target itself is the function to
// wrap (the result is a *FuncWrapper). Wrapping a wrapper nests interception.
func Wrap(target any, key ...string) (Wrapper, error) {
	switch len(key) {
	case 0:
		w, err := Function(target)
		if err != nil {
			return nil, err
		}
		return w, nil
	case 1:
		owner, ok := target.(Owner)
		if !ok {
			return nil, errx.New("[proxy]: target does not expose named slots",
				errx.WithCode(CodeInvalidOwner),
				errx.WithDetails(errx.D{"slot": key[0]}),
			)
		}
		w, err := Method(owner, key[0])
		if err != nil {
			return nil, err
		}
		return w, nil
	default:
		return nil, errx.New("[proxy]: at most one slot name is allowed",
			errx.WithCode(CodeInvalidKey),
			errx.WithDetails(errx.D{"keys": key}),
		)
	}
}
