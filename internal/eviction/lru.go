package eviction

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
)

// LRUPolicy evicts the least recently used entry. Both reads and writes
// promote a key to the most-recent position. Backed by
// hashicorp/golang-lru, which maintains the recency list.
type LRUPolicy struct {
	entries  *lru.Cache[string, any]
	capacity int
}

// NewLRU creates an LRU policy with the given capacity.
func NewLRU(capacity int) (*LRUPolicy, error) {
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}
	entries, err := lru.New[string, any](capacity)
	if err != nil {
		return nil, fmt.Errorf("eviction: %w", err)
	}
	return &LRUPolicy{
		entries:  entries,
		capacity: capacity,
	}, nil
}

// Get retrieves a value and marks the key as most recently used.
func (l *LRUPolicy) Get(key string) (any, bool) {
	return l.entries.Get(key)
}

// Set stores a value and marks the key as most recently used. A new key
// at capacity evicts the least recently used entry first.
func (l *LRUPolicy) Set(key string, value any) (string, bool) {
	if l.entries.Contains(key) {
		l.entries.Add(key, value)
		return "", false
	}

	var evictedKey string
	var evicted bool
	if l.entries.Len() >= l.capacity {
		if oldest, _, ok := l.entries.RemoveOldest(); ok {
			evictedKey, evicted = oldest, true
		}
	}

	l.entries.Add(key, value)
	return evictedKey, evicted
}

// Peek retrieves a value without updating recency.
func (l *LRUPolicy) Peek(key string) (any, bool) {
	return l.entries.Peek(key)
}

// Contains reports whether key is present without updating recency.
func (l *LRUPolicy) Contains(key string) bool {
	return l.entries.Contains(key)
}

// Keys returns a copy of the keys from least to most recently used.
func (l *LRUPolicy) Keys() []string {
	return l.entries.Keys()
}

// Len returns the number of entries.
func (l *LRUPolicy) Len() int {
	return l.entries.Len()
}

// Clear removes all entries.
func (l *LRUPolicy) Clear() {
	l.entries.Purge()
}

// Capacity returns the maximum number of entries.
func (l *LRUPolicy) Capacity() int {
	return l.capacity
}
