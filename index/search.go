package index

import (
	"golang.org/x/exp/constraints"
)

// Missing is returned by a Search if the key is not found
const Missing = -1

// Search returns the position of the key in the given keys,
// or Missing if the key is not present.
type Search[K constraints.Ordered] func(keys []K, key K) int

// Linear scans the keys from front to back and returns the first match.
// The keys don't need to be sorted.
func Linear[K constraints.Ordered](keys []K, key K) int {
	for i, k := range keys {
		if k == key {
			return i
		}
	}
	return Missing
}

// Binary performs a binary search. The keys are required to be
// strictly ascending, otherwise the result is undefined.
func Binary[K constraints.Ordered](keys []K, key K) int {
	left := 0
	right := len(keys) - 1
	for left <= right {
		m := int(uint(left+right) >> 1)
		current := keys[m]
		switch {
		case current < key:
			left = m + 1
		case current > key:
			right = m - 1
		default:
			return m
		}
	}
	return Missing
}

// IsSorted returns true if the keys are strictly ascending,
// which is the precondition of Binary.
func IsSorted[K constraints.Ordered](keys []K) bool {
	for i := 1; i < len(keys); i++ {
		if !(keys[i-1] < keys[i]) {
			return false
		}
	}
	return true
}
