package proxy

import (
	"slices"
	"sync"

	"github.com/samber/lo"
)

// Owner is an object exposing named callable slots that can be read and replaced at runtime.
//
// Method interception installs its wrapper through SetSlot and reverts it the same way.
// Structs with explicit function-valued fields can implement Owner by switching over the name.
type Owner interface {
	// Slot returns the callable stored under name and whether the slot exists.
	Slot(name string) (any, bool)
	// SetSlot stores fn under name, replacing any previous value.
	SetSlot(name string, fn any)
}

// Table is a name to callable indirection table implementing Owner.
// It is safe for concurrent use.
type Table struct {
	mu    sync.RWMutex
	slots map[string]any
}

// NewTable returns an empty table.
func NewTable() *Table {
	return &Table{slots: make(map[string]any)}
}

// Slot implements Owner.
func (t *Table) Slot(name string) (any, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	fn, ok := t.slots[name]
	return fn, ok
}

// SetSlot implements Owner.
func (t *Table) SetSlot(name string, fn any) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.slots == nil {
		t.slots = make(map[string]any)
	}
	t.slots[name] = fn
}

// Names returns the slot names in lexical order.
func (t *Table) Names() []string {
	t.mu.RLock()
	names := lo.Keys(t.slots)
	t.mu.RUnlock()

	slices.Sort(names)
	return names
}

// Lookup returns the callable stored under name converted to F.
// It reports false when the slot is missing or holds a value of another type.
func Lookup[F any](o Owner, name string) (F, bool) {
	var zero F

	v, ok := o.Slot(name)
	if !ok {
		return zero, false
	}

	fn, ok := v.(F)
	if !ok {
		return zero, false
	}
	return fn, true
}
