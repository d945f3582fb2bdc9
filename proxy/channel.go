package proxy

import (
	"slices"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

// Listener observes intercepted calls.
//
// OnCall runs synchronously on the caller's goroutine before the original callable.
// A panic inside OnCall aborts the intercepted call: later listeners and the original do not run.
type Listener interface {
	OnCall(event CallEvent)
}

// ListenerFunc adapts a plain function to the Listener interface.
type ListenerFunc func(event CallEvent)

// OnCall implements Listener.
func (f ListenerFunc) OnCall(event CallEvent) {
	f(event)
}

// Subscription is the handle of a registered listener.
// Go functions are not comparable, so the handle is what identifies a registration for removal.
type Subscription struct {
	id       uuid.UUID
	listener Listener
	once     bool
	fired    atomic.Bool
	channel  *Channel
}

// ID returns the unique identifier of the registration.
func (s *Subscription) ID() string {
	return s.id.String()
}

// Remove unregisters the listener. It reports whether the listener was still registered.
func (s *Subscription) Remove() bool {
	return s.channel.RemoveListener(s)
}

// Channel is a per-wrapper listener registry with synchronous fan-out of call events.
// The zero value is ready to use.
type Channel struct {
	mu   sync.Mutex
	subs []*Subscription
}

// On registers a persistent listener. Listeners fire in registration order.
func (c *Channel) On(l Listener) *Subscription {
	return c.add(l, false)
}

// AddListener is an alias for On.
func (c *Channel) AddListener(l Listener) *Subscription {
	return c.add(l, false)
}

// Once registers a listener that is removed right before its first invocation.
func (c *Channel) Once(l Listener) *Subscription {
	return c.add(l, true)
}

// RemoveListener unregisters the given subscription.
// It reports whether the subscription was registered on this channel.
func (c *Channel) RemoveListener(s *Subscription) bool {
	if s == nil {
		return false
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if !lo.Contains(c.subs, s) {
		return false
	}
	c.subs = lo.Without(c.subs, s)
	return true
}

// RemoveAllListeners unregisters every listener.
func (c *Channel) RemoveAllListeners() {
	c.mu.Lock()
	c.subs = nil
	c.mu.Unlock()
}

// ListenerCount returns the number of registered listeners.
func (c *Channel) ListenerCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.subs)
}

// Emit delivers the event to every listener registered when emission starts, in registration order.
//
// Listeners added during emission fire from the next event on; listeners removed during emission
// still receive the in-flight event. No lock is held while listeners run, so re-entrant calls are safe.
func (c *Channel) Emit(event CallEvent) {
	c.mu.Lock()
	snapshot := slices.Clone(c.subs)
	c.mu.Unlock()

	for _, s := range snapshot {
		if s.once {
			if !s.fired.CompareAndSwap(false, true) {
				continue
			}
			c.RemoveListener(s)
		}
		s.listener.OnCall(event)
	}
}

func (c *Channel) add(l Listener, once bool) *Subscription {
	s := &Subscription{
		id:       uuid.New(),
		listener: l,
		once:     once,
		channel:  c,
	}

	c.mu.Lock()
	c.subs = append(c.subs, s)
	c.mu.Unlock()

	return s
}
