// Package orderedmap provides a generic map which remembers insertion order.
package orderedmap

import "container/list"

// OrderedMap stores key-value pairs in insertion order. Overwriting a key keeps its position.
// The zero value is not usable; create instances with NewOrderedMap.
type OrderedMap[K comparable, V any] struct {
	store map[K]*list.Element
	keys  *list.List
}

type entry[K comparable, V any] struct {
	key   K
	value V
}

// NewOrderedMap creates a new, empty OrderedMap
func NewOrderedMap[K comparable, V any]() *OrderedMap[K, V] {
	return &OrderedMap[K, V]{
		store: map[K]*list.Element{},
		keys:  list.New(),
	}
}

// Set stores val under key. A new key is appended, an existing key keeps its position.
func (o *OrderedMap[K, V]) Set(key K, val V) {
	if e, exists := o.store[key]; exists {
		e.Value = entry[K, V]{key: key, value: val}
		return
	}
	o.store[key] = o.keys.PushBack(entry[K, V]{key: key, value: val})
}

// Get returns the value stored under key. The second return value is false when key is absent.
func (o *OrderedMap[K, V]) Get(key K) (V, bool) {
	e, exists := o.store[key]
	if !exists {
		return *new(V), false
	}
	return e.Value.(entry[K, V]).value, true
}

// Has reports whether key is present
func (o *OrderedMap[K, V]) Has(key K) bool {
	_, exists := o.store[key]
	return exists
}

// Delete removes key and its value. Deleting an absent key is a no-op.
func (o *OrderedMap[K, V]) Delete(key K) {
	e, exists := o.store[key]
	if !exists {
		return
	}
	o.keys.Remove(e)
	delete(o.store, key)
}

// Len returns the number of stored keys
func (o *OrderedMap[K, V]) Len() int {
	return o.keys.Len()
}

// Keys returns the keys in insertion order
func (o *OrderedMap[K, V]) Keys() []K {
	keys := make([]K, 0, o.keys.Len())
	for e := o.keys.Front(); e != nil; e = e.Next() {
		keys = append(keys, e.Value.(entry[K, V]).key)
	}
	return keys
}

// Values returns the values in key insertion order
func (o *OrderedMap[K, V]) Values() []V {
	values := make([]V, 0, o.keys.Len())
	for e := o.keys.Front(); e != nil; e = e.Next() {
		values = append(values, e.Value.(entry[K, V]).value)
	}
	return values
}

// Range calls fn for each pair in insertion order until fn returns false
func (o *OrderedMap[K, V]) Range(fn func(key K, val V) bool) {
	for e := o.keys.Front(); e != nil; e = e.Next() {
		kv := e.Value.(entry[K, V])
		if !fn(kv.key, kv.value) {
			return
		}
	}
}

// Clone returns a shallow copy preserving order
func (o *OrderedMap[K, V]) Clone() *OrderedMap[K, V] {
	c := NewOrderedMap[K, V]()
	o.Range(func(key K, val V) bool {
		c.Set(key, val)
		return true
	})
	return c
}
