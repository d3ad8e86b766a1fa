package ordered

import (
	"testing"
)

func TestMapInsertionOrder(t *testing.T) {
	m := New[string, int]()

	m.Set("a", 1)
	m.Set("b", 2)
	m.Set("c", 3)

	keys := m.Keys()
	expected := []string{"a", "b", "c"}
	if len(keys) != len(expected) {
		t.Fatalf("Expected %d keys, got %d", len(expected), len(keys))
	}
	for i, key := range expected {
		if keys[i] != key {
			t.Errorf("Expected key %q at position %d, got %q", key, i, keys[i])
		}
	}
}

func TestMapUpdateKeepsPosition(t *testing.T) {
	m := New[string, int]()

	m.Set("a", 1)
	m.Set("b", 2)

	if inserted := m.Set("a", 10); inserted {
		t.Error("Expected update of existing key, got insertion")
	}

	value, ok := m.Get("a")
	if !ok || value != 10 {
		t.Fatalf("Expected updated value 10, got %v (found=%v)", value, ok)
	}

	if keys := m.Keys(); keys[0] != "a" {
		t.Errorf("Expected a to keep its position, got order %v", keys)
	}
}

func TestMapOldestNewest(t *testing.T) {
	m := New[string, int]()

	if _, _, ok := m.Oldest(); ok {
		t.Error("Expected no oldest entry in empty map")
	}
	if _, _, ok := m.Newest(); ok {
		t.Error("Expected no newest entry in empty map")
	}

	m.Set("a", 1)
	m.Set("b", 2)

	if key, value, ok := m.Oldest(); !ok || key != "a" || value != 1 {
		t.Errorf("Expected oldest (a, 1), got (%v, %v, %v)", key, value, ok)
	}
	if key, value, ok := m.Newest(); !ok || key != "b" || value != 2 {
		t.Errorf("Expected newest (b, 2), got (%v, %v, %v)", key, value, ok)
	}
}

func TestMapMoveToBack(t *testing.T) {
	m := New[string, int]()

	m.Set("a", 1)
	m.Set("b", 2)
	m.Set("c", 3)

	if !m.MoveToBack("a") {
		t.Fatal("Expected MoveToBack to succeed for present key")
	}
	if m.MoveToBack("missing") {
		t.Error("Expected MoveToBack to fail for absent key")
	}

	if key, _, _ := m.Newest(); key != "a" {
		t.Errorf("Expected a at newest position, got %q", key)
	}
	if key, _, _ := m.Oldest(); key != "b" {
		t.Errorf("Expected b at oldest position, got %q", key)
	}
}

func TestMapDelete(t *testing.T) {
	m := New[string, int]()

	m.Set("a", 1)
	m.Set("b", 2)

	if !m.Delete("a") {
		t.Fatal("Expected Delete to succeed for present key")
	}
	if m.Delete("a") {
		t.Error("Expected Delete to fail for already removed key")
	}

	if m.Len() != 1 {
		t.Errorf("Expected length 1, got %d", m.Len())
	}
	if m.Contains("a") {
		t.Error("Expected a to be gone")
	}
}

func TestMapClear(t *testing.T) {
	m := New[string, int]()

	m.Set("a", 1)
	m.Set("b", 2)
	m.Clear()

	if m.Len() != 0 {
		t.Errorf("Expected empty map after Clear, got length %d", m.Len())
	}
	if len(m.Keys()) != 0 {
		t.Error("Expected no keys after Clear")
	}

	// The map stays usable after Clear
	m.Set("c", 3)
	if value, ok := m.Get("c"); !ok || value != 3 {
		t.Errorf("Expected (3, true) after reinsert, got (%v, %v)", value, ok)
	}
}

func TestMapKeysIsACopy(t *testing.T) {
	m := New[string, int]()

	m.Set("a", 1)
	keys := m.Keys()
	m.Set("b", 2)
	m.Delete("a")

	if len(keys) != 1 || keys[0] != "a" {
		t.Errorf("Expected snapshot [a] to be unaffected by mutations, got %v", keys)
	}
}
