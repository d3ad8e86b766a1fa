package eviction

// LFUPolicy evicts the entry with the lowest cumulative access count.
// A key's frequency starts at 1 on insertion, increments on every read,
// and is not reset by an overwrite. When several keys share the minimum
// frequency the oldest-inserted one among them is evicted; the entry
// store's insertion order makes the tie-break deterministic.
type LFUPolicy struct {
	*FIFOPolicy
	frequencies map[string]int
}

// NewLFU creates an LFU policy with the given capacity.
func NewLFU(capacity int) (*LFUPolicy, error) {
	fifo, err := NewFIFO(capacity)
	if err != nil {
		return nil, err
	}
	return &LFUPolicy{
		FIFOPolicy:  fifo,
		frequencies: make(map[string]int),
	}, nil
}

// Get retrieves a value and increments the key's access count.
func (l *LFUPolicy) Get(key string) (any, bool) {
	value, ok := l.entries.Get(key)
	if ok {
		l.frequencies[key]++
	}
	return value, ok
}

// Set stores a value. An existing key keeps its access count; a new key
// at capacity evicts the least frequently used entry first and starts
// at count 1.
func (l *LFUPolicy) Set(key string, value any) (string, bool) {
	if l.entries.Contains(key) {
		l.entries.Set(key, value)
		return "", false
	}

	var evictedKey string
	var evicted bool
	if l.entries.Len() >= l.capacity {
		victim := l.findLFU()
		l.entries.Delete(victim)
		delete(l.frequencies, victim)
		evictedKey, evicted = victim, true
	}

	l.entries.Set(key, value)
	l.frequencies[key] = 1
	return evictedKey, evicted
}

// Clear removes all entries and access counts.
func (l *LFUPolicy) Clear() {
	l.entries.Clear()
	l.frequencies = make(map[string]int)
}

// findLFU returns the oldest-inserted key among those with the minimum
// access count. Assumes the policy is non-empty.
func (l *LFUPolicy) findLFU() string {
	var victim string
	minFreq := -1
	for _, key := range l.entries.Keys() {
		if freq := l.frequencies[key]; minFreq == -1 || freq < minFreq {
			minFreq = freq
			victim = key
		}
	}
	return victim
}
