package cacherine

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/yordgenome03/cacherine/internal/eviction"
)

func TestCacheBasicOperations(t *testing.T) {
	cache, err := New(PolicyLRU, 100)
	if err != nil {
		t.Fatalf("Failed to create cache: %v", err)
	}

	cache.Set("key", "value")

	retrieved, found := cache.Get("key")
	if !found {
		t.Fatal("Expected to find key")
	}
	if retrieved != "value" {
		t.Fatalf("Expected value, got %v", retrieved)
	}

	if cache.Len() != 1 {
		t.Errorf("Expected 1 entry, got %d", cache.Len())
	}
	if !cache.Has("key") {
		t.Error("Expected Has to report key")
	}
	if cache.Has("missing") {
		t.Error("Expected Has to report absence")
	}
}

func TestCacheInvalidCapacity(t *testing.T) {
	for _, capacity := range []int{0, -5} {
		_, err := New(PolicyFIFO, capacity)
		if !errors.Is(err, eviction.ErrInvalidCapacity) {
			t.Errorf("Expected ErrInvalidCapacity for capacity %d, got %v", capacity, err)
		}
	}
}

func TestCacheMiss(t *testing.T) {
	cache, err := New(PolicyFIFO, 10)
	if err != nil {
		t.Fatalf("Failed to create cache: %v", err)
	}

	if _, found := cache.Get("nonexistent"); found {
		t.Fatal("Expected not to find nonexistent key")
	}
}

func TestCacheClear(t *testing.T) {
	cache, err := New(PolicyLFU, 10)
	if err != nil {
		t.Fatalf("Failed to create cache: %v", err)
	}

	cache.Set("a", 1)
	cache.Set("b", 2)
	cache.Clear()

	if cache.Len() != 0 {
		t.Errorf("Expected empty cache after Clear, got %d entries", cache.Len())
	}
	if keys := cache.Keys(); len(keys) != 0 {
		t.Errorf("Expected no keys after Clear, got %v", keys)
	}
	if _, found := cache.Get("a"); found {
		t.Error("Expected a to be absent after Clear")
	}
}

func TestCacheHooks(t *testing.T) {
	hooks := &Hooks{}
	var hits, misses, evictions []string

	hooks.AddOnHit(func(key string, _ any) { hits = append(hits, key) })
	hooks.AddOnMiss(func(key string) { misses = append(misses, key) })
	hooks.AddOnEvict(func(key string) { evictions = append(evictions, key) })

	cache, err := NewWithConfig(NewDefaultConfig().
		WithPolicy(PolicyFIFO).
		WithCapacity(1).
		WithHooks(hooks))
	if err != nil {
		t.Fatalf("Failed to create cache: %v", err)
	}

	cache.Set("a", 1)
	cache.Get("a")
	cache.Get("b")
	cache.Set("c", 2) // evicts a

	if len(hits) != 1 || hits[0] != "a" {
		t.Errorf("Expected one hit for a, got %v", hits)
	}
	if len(misses) != 1 || misses[0] != "b" {
		t.Errorf("Expected one miss for b, got %v", misses)
	}
	if len(evictions) != 1 || evictions[0] != "a" {
		t.Errorf("Expected one eviction of a, got %v", evictions)
	}
}

func TestCacheClearReportsNoEvictions(t *testing.T) {
	hooks := &Hooks{}
	evictions := 0
	hooks.AddOnEvict(func(string) { evictions++ })

	cache, err := NewWithConfig(NewDefaultConfig().
		WithPolicy(PolicyLRU).
		WithCapacity(10).
		WithHooks(hooks))
	if err != nil {
		t.Fatalf("Failed to create cache: %v", err)
	}

	cache.Set("a", 1)
	cache.Set("b", 2)
	cache.Clear()

	if evictions != 0 {
		t.Errorf("Expected no eviction events from Clear, got %d", evictions)
	}
}

func TestCacheString(t *testing.T) {
	cache, err := New(PolicyFIFO, 10)
	if err != nil {
		t.Fatalf("Failed to create cache: %v", err)
	}

	cache.Set("a", 1)
	cache.Set("b", 2)

	rendered := cache.String()
	if rendered != "Cache{a: 1, b: 2}" {
		t.Errorf("Unexpected rendering: %s", rendered)
	}
}

func TestCacheStringDoesNotConsumeEphemeralEntries(t *testing.T) {
	cache, err := New(PolicyEphemeralFIFO, 10)
	if err != nil {
		t.Fatalf("Failed to create cache: %v", err)
	}

	cache.Set("a", 1)
	if rendered := cache.String(); !strings.Contains(rendered, "a: 1") {
		t.Fatalf("Expected rendering to include a, got %s", rendered)
	}

	if _, found := cache.Get("a"); !found {
		t.Error("Expected a to survive String")
	}
}

func TestCacheKeysSnapshot(t *testing.T) {
	cache, err := New(PolicyFIFO, 10)
	if err != nil {
		t.Fatalf("Failed to create cache: %v", err)
	}

	cache.Set("a", 1)
	keys := cache.Keys()
	cache.Set("b", 2)

	if len(keys) != 1 {
		t.Errorf("Expected snapshot of 1 key to be unaffected by later writes, got %v", keys)
	}
}

func TestCacheConcurrentAccess(t *testing.T) {
	policies := []PolicyType{PolicyFIFO, PolicyEphemeralFIFO, PolicyLRU, PolicyMRU, PolicyLFU}

	for _, policyType := range policies {
		t.Run(string(policyType), func(t *testing.T) {
			const capacity = 32
			cache, err := New(policyType, capacity)
			if err != nil {
				t.Fatalf("Failed to create cache: %v", err)
			}

			const goroutines = 8
			const operations = 200

			var wg sync.WaitGroup
			wg.Add(goroutines)
			for g := 0; g < goroutines; g++ {
				go func(g int) {
					defer wg.Done()
					for i := 0; i < operations; i++ {
						key := fmt.Sprintf("key%d", (g*operations+i)%64)
						switch i % 4 {
						case 0, 1:
							cache.Set(key, i)
						case 2:
							cache.Get(key)
						case 3:
							cache.Keys()
						}
					}
				}(g)
			}
			wg.Wait()

			if cache.Len() > capacity {
				t.Errorf("Capacity exceeded under concurrency: %d > %d", cache.Len(), capacity)
			}
		})
	}
}

func TestCacheDefaultConfig(t *testing.T) {
	cache, err := NewWithConfig(nil)
	if err != nil {
		t.Fatalf("Failed to create cache with nil config: %v", err)
	}
	if cache.Capacity() != 1000 {
		t.Errorf("Expected default capacity 1000, got %d", cache.Capacity())
	}
}

func BenchmarkCacheSet(b *testing.B) {
	for _, policyType := range []PolicyType{PolicyFIFO, PolicyLRU, PolicyLFU} {
		b.Run(string(policyType), func(b *testing.B) {
			cache, err := New(policyType, 1024)
			if err != nil {
				b.Fatalf("Failed to create cache: %v", err)
			}

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				cache.Set(fmt.Sprintf("key%d", i%2048), i)
			}
		})
	}
}

func BenchmarkCacheGet(b *testing.B) {
	for _, policyType := range []PolicyType{PolicyFIFO, PolicyLRU, PolicyLFU} {
		b.Run(string(policyType), func(b *testing.B) {
			cache, err := New(policyType, 1024)
			if err != nil {
				b.Fatalf("Failed to create cache: %v", err)
			}
			for i := 0; i < 1024; i++ {
				cache.Set(fmt.Sprintf("key%d", i), i)
			}

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				cache.Get(fmt.Sprintf("key%d", i%1024))
			}
		})
	}
}
