package factory

import (
	"cmp"
	"errors"
	"slices"
	"sync"
)

// ErrDuplicate is returned when a key is inserted twice.
var ErrDuplicate = errors.New("duplicate registration")

// Table is an append-only map safe for concurrent use. Entries are never
// replaced or removed.
type Table[K cmp.Ordered, V any] struct {
	mu      sync.RWMutex
	entries map[K]V
}

// NewTable returns an empty table.
func NewTable[K cmp.Ordered, V any]() *Table[K, V] {
	return &Table[K, V]{entries: make(map[K]V)}
}

// Insert stores v under k unless k is already present, in which case the
// existing value is kept and ErrDuplicate is returned.
func (t *Table[K, V]) Insert(k K, v V) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.entries[k]; ok {
		return ErrDuplicate
	}
	t.entries[k] = v
	return nil
}

// Get returns the value stored under k.
func (t *Table[K, V]) Get(k K) (V, bool) {
	t.mu.RLock()
	v, ok := t.entries[k]
	t.mu.RUnlock()
	return v, ok
}

// Contains reports whether k is present.
func (t *Table[K, V]) Contains(k K) bool {
	_, ok := t.Get(k)
	return ok
}

// Len returns the number of entries.
func (t *Table[K, V]) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.entries)
}

// Keys returns all keys in ascending order.
func (t *Table[K, V]) Keys() []K {
	t.mu.RLock()
	keys := make([]K, 0, len(t.entries))
	for k := range t.entries {
		keys = append(keys, k)
	}
	t.mu.RUnlock()
	slices.Sort(keys)
	return keys
}
