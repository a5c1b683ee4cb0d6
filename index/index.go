// Package index implements a persistent map based on two parallel
// sorted slices. Every insert creates a new Index, the old one stays
// unchanged. Values are found by a pluggable Search.
package index

import (
	"github.com/hneemann/cmap"
	"github.com/hneemann/cmap/iterator"
	"golang.org/x/exp/constraints"
)

// Index is a sorted, immutable map. The keys are always strictly ascending.
// The zero value is an empty Index.
type Index[K constraints.Ordered, V any] struct {
	keys   []K
	values []V
}

// Empty returns an Index without entries
func Empty[K constraints.Ordered, V any]() Index[K, V] {
	return Index[K, V]{}
}

// New creates an Index containing the given entries.
// If a key is given more than once, the first entry wins, which
// is the same rule cmap.New follows.
func New[K constraints.Ordered, V any](entries ...cmap.Entry[K, V]) Index[K, V] {
	ix := Empty[K, V]()
	for i := len(entries) - 1; i >= 0; i-- {
		ix = ix.Insert(entries[i].Key, entries[i].Value)
	}
	return ix
}

// FromProducer creates an Index from the given entries.
// As in New, the first entry given for a key wins.
func FromProducer[K constraints.Ordered, V any](p iterator.Producer[cmap.Entry[K, V]]) (Index[K, V], error) {
	ix := Empty[K, V]()
	for e, err := range p {
		if err != nil {
			return Index[K, V]{}, err
		}
		if Binary(ix.keys, e.Key) == Missing {
			ix = ix.Insert(e.Key, e.Value)
		}
	}
	return ix, nil
}

// Insert returns a new Index containing the given key/value pair.
// If the key is already present, its value is replaced in the new Index.
func (ix Index[K, V]) Insert(key K, value V) Index[K, V] {
	n := len(ix.keys)
	i := 0
	for i < n && ix.keys[i] < key {
		i++
	}

	if i < n && ix.keys[i] == key {
		keys := make([]K, n)
		values := make([]V, n)
		copy(keys, ix.keys)
		copy(values, ix.values)
		values[i] = value
		return Index[K, V]{keys: keys, values: values}
	}

	keys := make([]K, n+1)
	values := make([]V, n+1)
	copy(keys, ix.keys[:i])
	copy(values, ix.values[:i])
	keys[i] = key
	values[i] = value
	copy(keys[i+1:], ix.keys[i:])
	copy(values[i+1:], ix.values[i:])
	return Index[K, V]{keys: keys, values: values}
}

// Find returns the value stored for the given key. The position
// of the key is determined by the given search.
// If the key is not present, a *cmap.NotFoundError is returned.
func (ix Index[K, V]) Find(key K, search Search[K]) (V, error) {
	if i := search(ix.keys, key); i >= 0 && i < len(ix.keys) {
		return ix.values[i], nil
	}
	var zero V
	return zero, cmap.NotFound(key)
}

// MustFind works like Find but panics if the key is not present.
func (ix Index[K, V]) MustFind(key K, search Search[K]) V {
	v, err := ix.Find(key, search)
	if err != nil {
		panic(err)
	}
	return v
}

// Len returns the number of entries
func (ix Index[K, V]) Len() int {
	return len(ix.keys)
}

// Keys returns a copy of the sorted keys
func (ix Index[K, V]) Keys() []K {
	return append([]K(nil), ix.keys...)
}

// Values returns a copy of the values in the order of the keys
func (ix Index[K, V]) Values() []V {
	return append([]V(nil), ix.values...)
}

// Entries yields the entries in ascending key order
func (ix Index[K, V]) Entries() iterator.Producer[cmap.Entry[K, V]] {
	return func(yield iterator.Consumer[cmap.Entry[K, V]]) {
		for i, k := range ix.keys {
			if !yield(cmap.E(k, ix.values[i]), nil) {
				return
			}
		}
	}
}
