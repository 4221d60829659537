// Package structmap implements the field table behind matte's struct
// value: a sorted slice of key/value entries located by binary search,
// grounded on original_source/matte/struct.h's _Struct (parallel keys/objs
// arrays) but keeping the entries ordered by key so display output and
// iteration order are deterministic rather than accidental insertion order.
package structmap

import "slices"

// Entry is a single struct field binding. Value is left as `any` so the
// package has no import-cycle dependency on runtime/object; callers
// instantiate Map[object.Value].
type Entry[V any] struct {
	Key   string
	Value V
}

// Map is a sorted-by-key field table, located by binary search rather than
// a hash map, since a struct's field order is observable to display.
type Map[V any] struct {
	entries []Entry[V]
}

// New returns an empty field table.
func New[V any]() *Map[V] {
	return &Map[V]{}
}

func (m *Map[V]) search(key string) (int, bool) {
	return slices.BinarySearchFunc(m.entries, key, func(e Entry[V], k string) int {
		if e.Key < k {
			return -1
		}
		if e.Key > k {
			return 1
		}
		return 0
	})
}

// Get returns the value bound to key, mirroring struct_get.
func (m *Map[V]) Get(key string) (V, bool) {
	i, ok := m.search(key)
	if !ok {
		var zero V
		return zero, false
	}
	return m.entries[i].Value, true
}

// Set inserts or overwrites the binding for key, mirroring
// struct_insert/struct_set (the original distinguishes the two; a sorted
// map makes insert-or-update the same operation).
func (m *Map[V]) Set(key string, value V) {
	i, ok := m.search(key)
	if ok {
		m.entries[i].Value = value
		return
	}
	m.entries = append(m.entries, Entry[V]{})
	copy(m.entries[i+1:], m.entries[i:])
	m.entries[i] = Entry[V]{Key: key, Value: value}
}

// Remove deletes the binding for key, mirroring struct_remove. Reports
// whether the key was present.
func (m *Map[V]) Remove(key string) bool {
	i, ok := m.search(key)
	if !ok {
		return false
	}
	m.entries = append(m.entries[:i], m.entries[i+1:]...)
	return true
}

// Len reports the number of bound fields, mirroring struct_get_length.
func (m *Map[V]) Len() int { return len(m.entries) }

// KeyAt returns the key at position i in sorted order, mirroring
// struct_get_key.
func (m *Map[V]) KeyAt(i int) string { return m.entries[i].Key }

// At returns the entry at position i in sorted order.
func (m *Map[V]) At(i int) Entry[V] { return m.entries[i] }

// Clone returns an independent copy of the table with the same bindings.
func (m *Map[V]) Clone() *Map[V] {
	return &Map[V]{entries: append([]Entry[V](nil), m.entries...)}
}
