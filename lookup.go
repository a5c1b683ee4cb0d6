package cmap

import (
	"github.com/hneemann/cmap/iterator"
)

// Lookup gives access to a table built from an evaluator chain.
// A Lookup is immutable and can be shared by concurrent readers.
// The zero value is an empty table.
type Lookup[K comparable, V any] struct {
	chain Evaluator[K, V]
}

// Wrap creates a Lookup from the given chain
func Wrap[K comparable, V any](chain Evaluator[K, V]) Lookup[K, V] {
	return Lookup[K, V]{chain: chain}
}

// New creates a Lookup containing the given entries.
// If a key is given more than once, the first entry wins.
// New panics if no entries are given.
func New[K comparable, V any](entries ...Entry[K, V]) Lookup[K, V] {
	return Wrap(Build(entries...))
}

// Join creates a Lookup which contains the entries of all the given
// lookups. Entries of a lookup given earlier hide entries of later ones.
func Join[K comparable, V any](lookups ...Lookup[K, V]) Lookup[K, V] {
	var chain Evaluator[K, V]
	for _, l := range lookups {
		if l.chain == nil {
			continue
		}
		if chain == nil {
			chain = l.chain
		} else {
			chain = Branch[K, V]{Left: chain, Right: l.chain}
		}
	}
	return Lookup[K, V]{chain: chain}
}

// Chain returns the evaluator chain of this Lookup, nil if the Lookup is empty
func (l Lookup[K, V]) Chain() Evaluator[K, V] {
	return l.chain
}

// Eval evaluates the chain, so a Lookup can be part of another chain
func (l Lookup[K, V]) Eval(key K) Outcome[V] {
	if l.chain == nil {
		return Outcome[V]{}
	}
	return l.chain.Eval(key)
}

func (l Lookup[K, V]) entries(yield func(Entry[K, V]) bool) bool {
	if l.chain == nil {
		return true
	}
	return l.chain.entries(yield)
}

// Get returns the value stored for the given key.
// If the key is not present, a *NotFoundError is returned.
func (l Lookup[K, V]) Get(key K) (V, error) {
	if o := l.Eval(key); o.Matched {
		return o.Value, nil
	}
	var zero V
	return zero, NotFound(key)
}

// MustGet works like Get but panics if the key is not present.
// Allows expressions like outer.MustGet(1).MustGet(10) in nested tables.
func (l Lookup[K, V]) MustGet(key K) V {
	v, err := l.Get(key)
	if err != nil {
		panic(err)
	}
	return v
}

// Contains returns true if the key is present
func (l Lookup[K, V]) Contains(key K) bool {
	return l.Eval(key).Matched
}

// Entries yields all entries of the table in priority order.
// Entries hidden by an earlier entry with the same key are included.
func (l Lookup[K, V]) Entries() iterator.Producer[Entry[K, V]] {
	return func(yield iterator.Consumer[Entry[K, V]]) {
		l.entries(func(e Entry[K, V]) bool {
			return yield(e, nil)
		})
	}
}

// Unique yields the entries which are found by Get, in priority order.
func (l Lookup[K, V]) Unique() iterator.Producer[Entry[K, V]] {
	return func(yield iterator.Consumer[Entry[K, V]]) {
		seen := map[K]struct{}{}
		l.entries(func(e Entry[K, V]) bool {
			if _, ok := seen[e.Key]; ok {
				return true
			}
			seen[e.Key] = struct{}{}
			return yield(e, nil)
		})
	}
}

// Len returns the number of distinct keys
func (l Lookup[K, V]) Len() int {
	n := 0
	for range l.Unique() {
		n++
	}
	return n
}

// GetEach looks up all the given keys.
// A missing key results in a *NotFoundError at its position.
func (l Lookup[K, V]) GetEach(keys iterator.Producer[K]) iterator.Producer[V] {
	return iterator.Map(keys, func(_ int, key K) (V, error) {
		return l.Get(key)
	})
}

// GetParallel works like GetEach but uses all available cores if the
// number of keys is large enough. The order of the results is kept.
func (l Lookup[K, V]) GetParallel(keys []K) iterator.Producer[V] {
	return iterator.MapAuto(iterator.Slice(keys), len(keys), func() func(int, K) (V, error) {
		return func(_ int, key K) (V, error) {
			return l.Get(key)
		}
	})
}
