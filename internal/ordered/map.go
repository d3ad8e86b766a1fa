// Package ordered provides an insertion-ordered map, the storage
// primitive shared by the eviction policies.
package ordered

import "container/list"

type pair[K comparable, V any] struct {
	key   K
	value V
}

// Map is a mapping that remembers the order in which keys were inserted.
// The front of the order is the oldest entry, the back is the newest.
// It is not safe for concurrent use; callers are expected to serialize
// access.
type Map[K comparable, V any] struct {
	elements map[K]*list.Element
	order    *list.List
}

// New creates an empty ordered map.
func New[K comparable, V any]() *Map[K, V] {
	return &Map[K, V]{
		elements: make(map[K]*list.Element),
		order:    list.New(),
	}
}

// Len returns the number of entries in the map.
func (m *Map[K, V]) Len() int {
	return m.order.Len()
}

// Get returns the value stored under key. The order is not affected.
func (m *Map[K, V]) Get(key K) (V, bool) {
	if elem, ok := m.elements[key]; ok {
		return elem.Value.(pair[K, V]).value, true
	}
	var zero V
	return zero, false
}

// Contains reports whether key is present.
func (m *Map[K, V]) Contains(key K) bool {
	_, ok := m.elements[key]
	return ok
}

// Set stores value under key. A new key is appended at the back (newest
// position); an existing key keeps its position and only the value is
// replaced. It reports whether a new entry was inserted.
func (m *Map[K, V]) Set(key K, value V) bool {
	if elem, ok := m.elements[key]; ok {
		elem.Value = pair[K, V]{key: key, value: value}
		return false
	}
	m.elements[key] = m.order.PushBack(pair[K, V]{key: key, value: value})
	return true
}

// Delete removes key and reports whether it was present.
func (m *Map[K, V]) Delete(key K) bool {
	elem, ok := m.elements[key]
	if !ok {
		return false
	}
	m.order.Remove(elem)
	delete(m.elements, key)
	return true
}

// MoveToBack moves key to the newest position. It reports whether the
// key was present.
func (m *Map[K, V]) MoveToBack(key K) bool {
	elem, ok := m.elements[key]
	if !ok {
		return false
	}
	m.order.MoveToBack(elem)
	return true
}

// Oldest returns the entry at the front of the order.
func (m *Map[K, V]) Oldest() (K, V, bool) {
	return m.at(m.order.Front())
}

// Newest returns the entry at the back of the order.
func (m *Map[K, V]) Newest() (K, V, bool) {
	return m.at(m.order.Back())
}

func (m *Map[K, V]) at(elem *list.Element) (K, V, bool) {
	if elem == nil {
		var zeroK K
		var zeroV V
		return zeroK, zeroV, false
	}
	p := elem.Value.(pair[K, V])
	return p.key, p.value, true
}

// Keys returns a copy of the keys from oldest to newest. The returned
// slice is detached from the map and safe to hold across mutations.
func (m *Map[K, V]) Keys() []K {
	keys := make([]K, 0, m.order.Len())
	for elem := m.order.Front(); elem != nil; elem = elem.Next() {
		keys = append(keys, elem.Value.(pair[K, V]).key)
	}
	return keys
}

// Clear removes all entries.
func (m *Map[K, V]) Clear() {
	m.elements = make(map[K]*list.Element)
	m.order.Init()
}
