package cacherine

import (
	"fmt"
	"strings"
	"sync"

	"github.com/yordgenome03/cacherine/internal/eviction"
)

// Cache is a fixed-capacity in-memory key-value cache with a pluggable
// eviction policy. All operations are serialized behind a single mutex
// per instance, making any policy safe for concurrent callers.
type Cache struct {
	policy eviction.Policy
	hooks  *Hooks
	logger Logger
	mu     sync.Mutex
}

// New creates a cache with the given eviction policy and capacity.
// It returns eviction.ErrInvalidCapacity when capacity is not positive.
func New(policy PolicyType, capacity int) (*Cache, error) {
	return NewWithConfig(NewDefaultConfig().WithPolicy(policy).WithCapacity(capacity))
}

// NewWithConfig creates a cache from the given configuration
func NewWithConfig(config *Config) (*Cache, error) {
	if config == nil {
		config = NewDefaultConfig()
	}

	policy, err := eviction.New(eviction.Config{
		Type:     config.Policy,
		Capacity: config.Capacity,
	})
	if err != nil {
		return nil, err
	}

	logger := config.Logger
	if logger == nil {
		logger = NewNoOpLogger()
	}

	hooks := config.Hooks
	if hooks == nil {
		hooks = &Hooks{}
	}

	return &Cache{
		policy: policy,
		hooks:  hooks,
		logger: logger,
	}, nil
}

func (c *Cache) lock(fn func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fn()
}

// Get retrieves a value from the cache by key, applying the policy's
// access rule. Absence is reported through the second return value,
// never as an error.
func (c *Cache) Get(key string) (any, bool) {
	var value any
	var found bool

	c.lock(func() {
		value, found = c.policy.Get(key)
		if found {
			c.hooks.invokeOnHit(key, value)
		} else {
			c.hooks.invokeOnMiss(key)
		}
	})

	return value, found
}

// Set stores a value under key. An existing key has its value replaced
// per the policy's on-write rule; a new key at capacity evicts exactly
// one entry first, so capacity is never exceeded.
func (c *Cache) Set(key string, value any) {
	c.lock(func() {
		if evictedKey, evicted := c.policy.Set(key, value); evicted {
			c.logger.Debug("entry evicted", F("key", evictedKey))
			c.hooks.invokeOnEvict(evictedKey)
		}
	})
}

// Clear removes all entries. No eviction events are reported for this path.
func (c *Cache) Clear() {
	c.lock(func() {
		c.policy.Clear()
	})
}

// Keys returns a snapshot of the current keys in entry-store order. The
// returned slice is a copy and safe to iterate concurrently with cache
// mutations.
func (c *Cache) Keys() []string {
	var keys []string
	c.lock(func() {
		keys = c.policy.Keys()
	})
	return keys
}

// Len returns the current number of entries in the cache
func (c *Cache) Len() int {
	var length int
	c.lock(func() {
		length = c.policy.Len()
	})
	return length
}

// Has checks if a key exists without perturbing the eviction order
func (c *Cache) Has(key string) bool {
	var exists bool
	c.lock(func() {
		exists = c.policy.Contains(key)
	})
	return exists
}

// Capacity returns the maximum number of entries the cache can hold
func (c *Cache) Capacity() int {
	return c.policy.Capacity()
}

// String renders the current key-value snapshot in entry-store order.
// Reads go through Peek so the rendering has no policy side effects.
func (c *Cache) String() string {
	var b strings.Builder
	c.lock(func() {
		b.WriteString("Cache{")
		for i, key := range c.policy.Keys() {
			if i > 0 {
				b.WriteString(", ")
			}
			value, _ := c.policy.Peek(key)
			fmt.Fprintf(&b, "%s: %v", key, value)
		}
		b.WriteString("}")
	})
	return b.String()
}
