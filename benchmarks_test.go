package cmap

import (
	"github.com/hneemann/cmap/listMap"
	"math/rand/v2"
	"strconv"
	"testing"
)

type fixture struct {
	entries  []Entry[int, int]
	reversed []int
}

func createFixture(size int) fixture {
	r := rand.New(rand.NewPCG(0x853c49e6748fea9b, 0xda3e39cb94b95bdb))
	entries := make([]Entry[int, int], size)
	for i := range entries {
		entries[i] = E(int(r.Int32()), int(r.Int32()))
	}
	reversed := make([]int, size)
	for i, e := range entries {
		reversed[size-1-i] = e.Key
	}
	return fixture{entries: entries, reversed: reversed}
}

var sink int

func BenchmarkLookup(b *testing.B) {
	for _, size := range []int{100, 1000} {
		f := createFixture(size)
		name := strconv.Itoa(size)

		chain := New(f.entries...)
		b.Run("chain "+name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				for _, k := range f.reversed {
					sink = chain.MustGet(k)
				}
			}
		})

		nested := Wrap(BuildNested(f.entries...))
		b.Run("nested "+name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				for _, k := range f.reversed {
					sink = nested.MustGet(k)
				}
			}
		})

		lm := listMap.New[int, int](size)
		goMap := make(map[int]int, size)
		for _, e := range f.entries {
			lm = lm.Append(e.Key, e.Value)
			goMap[e.Key] = e.Value
		}
		b.Run("listMap "+name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				for _, k := range f.reversed {
					sink, _ = lm.Get(k)
				}
			}
		})
		b.Run("map "+name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				for _, k := range f.reversed {
					sink = goMap[k]
				}
			}
		})
	}
}
