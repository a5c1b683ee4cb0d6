// Package cmap implements immutable lookup tables for key sets which are
// known in advance, like dispatch tables or static dictionaries.
//
// A table is a chain of evaluators. Each Terminal tests a single key, and
// a Branch combines two evaluators with priority on the left one. If the
// same key is given more than once, the first entry wins.
//
// A second representation, the sorted Index, is found in the index package.
package cmap

// Entry is a key/value pair used to build a table
type Entry[K comparable, V any] struct {
	Key   K
	Value V
}

// E creates an Entry
func E[K comparable, V any](key K, value V) Entry[K, V] {
	return Entry[K, V]{Key: key, Value: value}
}

// Outcome is the result of the evaluation of a key.
// If Matched is false, Value has no meaning.
type Outcome[V any] struct {
	Matched bool
	Value   V
}

// Evaluator evaluates a key. The only implementations are
// Terminal, Branch and Lookup.
type Evaluator[K comparable, V any] interface {
	// Eval evaluates the given key
	Eval(key K) Outcome[V]
	// entries yields all entries in priority order
	entries(yield func(Entry[K, V]) bool) bool
}

// Terminal matches a single key
type Terminal[K comparable, V any] struct {
	Key   K
	Value V
}

// Eval matches if the key equals t.Key. The value is always t.Value.
func (t Terminal[K, V]) Eval(key K) Outcome[V] {
	return Outcome[V]{Matched: key == t.Key, Value: t.Value}
}

func (t Terminal[K, V]) entries(yield func(Entry[K, V]) bool) bool {
	return yield(Entry[K, V]{Key: t.Key, Value: t.Value})
}

// Branch evaluates Left first. If Left does not match, the
// outcome of Right is returned, whether it matched or not.
type Branch[K comparable, V any] struct {
	Left  Evaluator[K, V]
	Right Evaluator[K, V]
}

func (b Branch[K, V]) Eval(key K) Outcome[V] {
	if o := b.Left.Eval(key); o.Matched {
		return o
	}
	return b.Right.Eval(key)
}

func (b Branch[K, V]) entries(yield func(Entry[K, V]) bool) bool {
	if !b.Left.entries(yield) {
		return false
	}
	return b.Right.entries(yield)
}

// Build creates the evaluator chain by a left fold of the given entries.
// The first entry given for a key has the highest priority.
// Build panics if no entries are given.
func Build[K comparable, V any](entries ...Entry[K, V]) Evaluator[K, V] {
	if len(entries) == 0 {
		panic("cmap: Build requires at least one entry")
	}
	var chain Evaluator[K, V] = Terminal[K, V](entries[0])
	for _, e := range entries[1:] {
		chain = Branch[K, V]{Left: chain, Right: Terminal[K, V](e)}
	}
	return chain
}

// BuildNested creates the evaluator chain by nesting the branches to the
// right, which means the first entry is evaluated by the outermost branch.
// The priorities are the same as the ones created by Build.
// BuildNested panics if no entries are given.
func BuildNested[K comparable, V any](entries ...Entry[K, V]) Evaluator[K, V] {
	switch len(entries) {
	case 0:
		panic("cmap: BuildNested requires at least one entry")
	case 1:
		return Terminal[K, V](entries[0])
	default:
		return Branch[K, V]{
			Left:  Terminal[K, V](entries[0]),
			Right: BuildNested(entries[1:]...),
		}
	}
}
