// Package listMap implements a small persistent association list.
// Lookups are linear, so it is only useful for small maps or as a
// simple reference implementation.
package listMap

type listMapEntry[K comparable, V any] struct {
	Key   K
	Value V
}

type ListMap[K comparable, V any] []listMapEntry[K, V]

func New[K comparable, V any](size int) ListMap[K, V] {
	return make(ListMap[K, V], 0, size)
}

func (l ListMap[K, V]) Get(key K) (V, bool) {
	for _, e := range l {
		if e.Key == key {
			return e.Value, true
		}
	}
	var zero V
	return zero, false
}

// Append returns a new list containing the given entry.
// If the key is already present, its value is replaced in the
// new list. The receiver is never modified.
func (l ListMap[K, V]) Append(key K, v V) ListMap[K, V] {
	n := make(ListMap[K, V], len(l), len(l)+1)
	copy(n, l)
	for i, e := range n {
		if e.Key == key {
			n[i].Value = v
			return n
		}
	}
	return append(n, listMapEntry[K, V]{Key: key, Value: v})
}

func (l ListMap[K, V]) Size() int {
	return len(l)
}

// Iter iterates over the entries in insertion order
func (l ListMap[K, V]) Iter(yield func(key K, v V) bool) {
	for _, e := range l {
		if !yield(e.Key, e.Value) {
			return
		}
	}
}
