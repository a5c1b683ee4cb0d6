package iterator

import (
	"runtime"
	"sync"
)

// Consumer receives the elements of a Producer.
// Returning false stops the producer.
type Consumer[V any] func(V, error) bool

// Producer yields its elements to a Consumer. A Producer can be
// used directly in a range loop: for v, err := range p {...}
type Producer[V any] func(Consumer[V])

// Slice creates a Producer from a slice
func Slice[V any](items []V) Producer[V] {
	return func(yield Consumer[V]) {
		for _, i := range items {
			if !yield(i, nil) {
				return
			}
		}
	}
}

// ToSlice reads all items from the Producer and stores them in a slice.
// Reading stops at the first error.
func ToSlice[V any](it Producer[V]) ([]V, error) {
	var sl []V
	for v, err := range it {
		if err != nil {
			return sl, err
		}
		sl = append(sl, v)
	}
	return sl, nil
}

type container[V any] struct {
	num int
	val V
	err error
}

// toChan writes the elements to a channel. Closing done stops the producer.
func toChan[V any](it Producer[V]) (<-chan container[V], chan struct{}) {
	c := make(chan container[V])
	done := make(chan struct{})
	go func() {
		defer close(c)
		i := 0
		for v, err := range it {
			select {
			case c <- container[V]{num: i, val: v, err: err}:
				i++
			case <-done:
				return
			}
		}
	}()
	return c, done
}

// Map maps the elements to new elements created by the given mapper function
func Map[I, O any](p Producer[I], mapper func(i int, v I) (O, error)) Producer[O] {
	return func(yield Consumer[O]) {
		i := 0
		for item, err := range p {
			var o O
			if err == nil {
				o, err = mapper(i, item)
			}
			if !yield(o, err) {
				return
			}
			i++
		}
	}
}

// MapParallel works like Map but calls the mappers on all available cores.
// The mapperFac is called once per worker. The order of the elements is kept.
func MapParallel[I, O any](p Producer[I], mapperFac func() func(i int, v I) (O, error)) Producer[O] {
	if runtime.NumCPU() == 1 {
		return Map(p, mapperFac())
	}

	return func(yield Consumer[O]) {
		c, done := toChan(p)
		result := make(chan container[O])
		wg := sync.WaitGroup{}
		for range runtime.NumCPU() {
			wg.Add(1)
			mf := mapperFac()
			go func() {
				defer wg.Done()
				for item := range c {
					var o O
					err := item.err
					if err == nil {
						o, err = mf(item.num, item.val)
					}
					result <- container[O]{num: item.num, val: o, err: err}
				}
			}()
		}

		go func() {
			wg.Wait()
			close(result)
		}()

		stop := func() {
			close(done)
			go func() {
				for range result {
				}
			}()
		}

		nextOut := 0
		buffer := make(map[int]container[O])
		for r := range result {
			buffer[r.num] = r
			for {
				b, ok := buffer[nextOut]
				if !ok {
					break
				}
				delete(buffer, nextOut)
				nextOut++
				if !yield(b.val, b.err) {
					stop()
					return
				}
			}
		}
		close(done)
	}
}

const parallelThreshold = 64

// MapAuto uses MapParallel if the producer is known to be large
// enough to make the parallel processing worth it, Map otherwise.
func MapAuto[I, O any](p Producer[I], size int, mapperFac func() func(i int, v I) (O, error)) Producer[O] {
	if size < parallelThreshold {
		return Map(p, mapperFac())
	}
	return MapParallel(p, mapperFac)
}
