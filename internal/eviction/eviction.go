// Package eviction implements the cache eviction policies.
//
// A Policy owns its own entry store and encodes one reordering/removal
// rule. Implementations are not safe for concurrent use: the cacherine
// package wraps a policy behind a single mutex per cache instance.
package eviction

import (
	"errors"
	"fmt"
)

// ErrInvalidCapacity is returned when a policy is constructed with a
// non-positive capacity. It is the only validated precondition.
var ErrInvalidCapacity = errors.New("eviction: capacity must be a positive integer")

// Type identifies an eviction policy.
type Type string

const (
	// FIFO evicts the longest-resident entry, irrespective of access pattern.
	FIFO Type = "fifo"

	// EphemeralFIFO behaves like FIFO but removes an entry as soon as it
	// has been read once.
	EphemeralFIFO Type = "ephemeral-fifo"

	// LRU evicts the entry least recently accessed (read or written).
	LRU Type = "lru"

	// MRU evicts the entry most recently accessed.
	MRU Type = "mru"

	// LFU evicts the entry with the lowest cumulative access count.
	LFU Type = "lfu"
)

// Policy defines the contract every eviction policy implements.
//
// Get returns the value for key, applying the policy's access rule
// (reordering, frequency counting, or one-shot removal). An absent key
// has no side effect.
//
// Set replaces the value in place for an existing key, applying the
// policy's on-write rule. For a new key at capacity it evicts exactly
// one entry first and reports the evicted key; capacity is never
// exceeded.
//
// Peek reads a value without applying any access rule.
type Policy interface {
	Get(key string) (any, bool)
	Set(key string, value any) (evictedKey string, evicted bool)
	Peek(key string) (any, bool)
	Contains(key string) bool
	Keys() []string
	Len() int
	Clear()
	Capacity() int
}

// Config holds configuration for constructing a policy.
type Config struct {
	Type     Type
	Capacity int
}

// New creates an eviction policy from the given config.
func New(config Config) (Policy, error) {
	switch config.Type {
	case FIFO:
		return NewFIFO(config.Capacity)
	case EphemeralFIFO:
		return NewEphemeralFIFO(config.Capacity)
	case LRU:
		return NewLRU(config.Capacity)
	case MRU:
		return NewMRU(config.Capacity)
	case LFU:
		return NewLFU(config.Capacity)
	default:
		return nil, fmt.Errorf("eviction: unknown policy type %q", config.Type)
	}
}
