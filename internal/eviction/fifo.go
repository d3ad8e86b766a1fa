package eviction

import (
	"github.com/yordgenome03/cacherine/internal/ordered"
)

// FIFOPolicy evicts entries in insertion order. Reads never change the
// eviction order, and updating an existing key keeps its position.
type FIFOPolicy struct {
	entries  *ordered.Map[string, any]
	capacity int
}

// NewFIFO creates a FIFO policy with the given capacity.
func NewFIFO(capacity int) (*FIFOPolicy, error) {
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}
	return &FIFOPolicy{
		entries:  ordered.New[string, any](),
		capacity: capacity,
	}, nil
}

// Get retrieves a value. FIFO reads have no side effect.
func (f *FIFOPolicy) Get(key string) (any, bool) {
	return f.entries.Get(key)
}

// Set stores a value. An existing key is updated in place; a new key at
// capacity evicts the oldest-inserted entry first.
func (f *FIFOPolicy) Set(key string, value any) (string, bool) {
	if f.entries.Contains(key) {
		f.entries.Set(key, value)
		return "", false
	}

	var evictedKey string
	var evicted bool
	if f.entries.Len() >= f.capacity {
		oldest, _, _ := f.entries.Oldest()
		f.entries.Delete(oldest)
		evictedKey, evicted = oldest, true
	}

	f.entries.Set(key, value)
	return evictedKey, evicted
}

// Peek retrieves a value without any side effect.
func (f *FIFOPolicy) Peek(key string) (any, bool) {
	return f.entries.Get(key)
}

// Contains reports whether key is present.
func (f *FIFOPolicy) Contains(key string) bool {
	return f.entries.Contains(key)
}

// Keys returns a copy of the keys in insertion order.
func (f *FIFOPolicy) Keys() []string {
	return f.entries.Keys()
}

// Len returns the number of entries.
func (f *FIFOPolicy) Len() int {
	return f.entries.Len()
}

// Clear removes all entries.
func (f *FIFOPolicy) Clear() {
	f.entries.Clear()
}

// Capacity returns the maximum number of entries.
func (f *FIFOPolicy) Capacity() int {
	return f.capacity
}
