package collections

import "fmt"

// entry is one node of the insertion-order list.
type entry[K comparable, V any] struct {
	key        K
	value      V
	prev, next *entry[K, V]
}

// OrderedMap is a hash map that iterates in insertion order.
// Re-putting an existing key replaces the value but keeps its position.
type OrderedMap[K comparable, V any] struct {
	index      map[K]*entry[K, V]
	head, tail *entry[K, V]
}

// NewOrderedMap returns an empty map with room for capacity keys.
func NewOrderedMap[K comparable, V any](capacity int) *OrderedMap[K, V] {
	if capacity < 0 {
		capacity = 0
	}
	return &OrderedMap[K, V]{index: make(map[K]*entry[K, V], capacity)}
}

// Put stores value under key.
// Complexity: O(1) amortized.
func (m *OrderedMap[K, V]) Put(key K, value V) {
	if e, ok := m.index[key]; ok {
		e.value = value
		return
	}
	e := &entry[K, V]{key: key, value: value, prev: m.tail}
	if m.tail == nil {
		m.head = e
	} else {
		m.tail.next = e
	}
	m.tail = e
	m.index[key] = e
}

// Get returns the value stored under key, or ErrKeyNotFound.
func (m *OrderedMap[K, V]) Get(key K) (V, error) {
	if e, ok := m.index[key]; ok {
		return e.value, nil
	}
	var zero V
	return zero, fmt.Errorf("%w: %v", ErrKeyNotFound, key)
}

// Contains reports whether key is stored.
func (m *OrderedMap[K, V]) Contains(key K) bool {
	_, ok := m.index[key]
	return ok
}

// Remove deletes key, or returns ErrKeyNotFound.
// Complexity: O(1).
func (m *OrderedMap[K, V]) Remove(key K) error {
	e, ok := m.index[key]
	if !ok {
		return fmt.Errorf("%w: %v", ErrKeyNotFound, key)
	}
	if e.prev == nil {
		m.head = e.next
	} else {
		e.prev.next = e.next
	}
	if e.next == nil {
		m.tail = e.prev
	} else {
		e.next.prev = e.prev
	}
	delete(m.index, key)
	return nil
}

// Len returns the number of stored keys.
func (m *OrderedMap[K, V]) Len() int { return len(m.index) }

// Keys returns the keys in insertion order.
func (m *OrderedMap[K, V]) Keys() []K {
	keys := make([]K, 0, len(m.index))
	for e := m.head; e != nil; e = e.next {
		keys = append(keys, e.key)
	}
	return keys
}

// Values returns the values in insertion order.
func (m *OrderedMap[K, V]) Values() []V {
	values := make([]V, 0, len(m.index))
	for e := m.head; e != nil; e = e.next {
		values = append(values, e.value)
	}
	return values
}

// Each calls fn for every pair in insertion order until fn returns false.
// fn must not add or remove keys.
func (m *OrderedMap[K, V]) Each(fn func(key K, value V) bool) {
	for e := m.head; e != nil; e = e.next {
		if !fn(e.key, e.value) {
			return
		}
	}
}

// Clear removes every key.
func (m *OrderedMap[K, V]) Clear() {
	m.index = make(map[K]*entry[K, V])
	m.head, m.tail = nil, nil
}
