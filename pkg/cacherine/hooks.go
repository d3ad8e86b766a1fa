package cacherine

// Hooks defines event callbacks for cache operations. Hooks run inside
// the cache lock and must not call back into the cache.
type Hooks struct {
	// OnHit is called when a cache key is found
	OnHit []OnHitHook

	// OnMiss is called when a cache key is not found
	OnMiss []OnMissHook

	// OnEvict is called when an entry is evicted to make room for a new key
	OnEvict []OnEvictHook
}

// Hook function type definitions
type (
	// OnHitHook is called when a cache hit occurs
	OnHitHook func(key string, value any)

	// OnMissHook is called when a cache miss occurs
	OnMissHook func(key string)

	// OnEvictHook is called when a cache entry is evicted
	OnEvictHook func(key string)
)

// AddOnHit adds an OnHit hook
func (h *Hooks) AddOnHit(hook OnHitHook) {
	h.OnHit = append(h.OnHit, hook)
}

// AddOnMiss adds an OnMiss hook
func (h *Hooks) AddOnMiss(hook OnMissHook) {
	h.OnMiss = append(h.OnMiss, hook)
}

// AddOnEvict adds an OnEvict hook
func (h *Hooks) AddOnEvict(hook OnEvictHook) {
	h.OnEvict = append(h.OnEvict, hook)
}

func (h *Hooks) invokeOnHit(key string, value any) {
	if h == nil {
		return
	}
	for _, hook := range h.OnHit {
		hook(key, value)
	}
}

func (h *Hooks) invokeOnMiss(key string) {
	if h == nil {
		return
	}
	for _, hook := range h.OnMiss {
		hook(key)
	}
}

func (h *Hooks) invokeOnEvict(key string) {
	if h == nil {
		return
	}
	for _, hook := range h.OnEvict {
		hook(key)
	}
}
