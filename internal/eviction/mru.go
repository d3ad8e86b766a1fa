package eviction

import (
	"github.com/yordgenome03/cacherine/internal/ordered"
)

// MRUPolicy evicts the most recently used entry. Reads and writes move a
// key to the most-recent position; on overflow the entry currently at
// that position is removed before the new key is inserted, so an
// incoming key is never its own victim.
type MRUPolicy struct {
	entries  *ordered.Map[string, any]
	capacity int
}

// NewMRU creates an MRU policy with the given capacity.
func NewMRU(capacity int) (*MRUPolicy, error) {
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}
	return &MRUPolicy{
		entries:  ordered.New[string, any](),
		capacity: capacity,
	}, nil
}

// Get retrieves a value and marks the key as most recently used.
func (m *MRUPolicy) Get(key string) (any, bool) {
	value, ok := m.entries.Get(key)
	if ok {
		m.entries.MoveToBack(key)
	}
	return value, ok
}

// Set stores a value at the most-recent position. A new key at capacity
// evicts the current most-recently-used entry first.
func (m *MRUPolicy) Set(key string, value any) (string, bool) {
	if m.entries.Contains(key) {
		m.entries.Delete(key)
		m.entries.Set(key, value)
		return "", false
	}

	var evictedKey string
	var evicted bool
	if m.entries.Len() >= m.capacity {
		newest, _, _ := m.entries.Newest()
		m.entries.Delete(newest)
		evictedKey, evicted = newest, true
	}

	m.entries.Set(key, value)
	return evictedKey, evicted
}

// Peek retrieves a value without updating recency.
func (m *MRUPolicy) Peek(key string) (any, bool) {
	return m.entries.Get(key)
}

// Contains reports whether key is present without updating recency.
func (m *MRUPolicy) Contains(key string) bool {
	return m.entries.Contains(key)
}

// Keys returns a copy of the keys from least to most recently used.
func (m *MRUPolicy) Keys() []string {
	return m.entries.Keys()
}

// Len returns the number of entries.
func (m *MRUPolicy) Len() int {
	return m.entries.Len()
}

// Clear removes all entries.
func (m *MRUPolicy) Clear() {
	m.entries.Clear()
}

// Capacity returns the maximum number of entries.
func (m *MRUPolicy) Capacity() int {
	return m.capacity
}
