// File: producer/producer.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package producer

import (
	"fmt"

	"github.com/momentics/parfill/api"
)

// checkSplit validates a split index against the producer length.
func checkSplit(at, n int) {
	if at < 0 || at > n {
		panic(fmt.Sprintf("producer: split index %d out of range [0,%d]", at, n))
	}
}

// FromSlice returns a producer over items. The producer does not copy the
// slice; splitting yields sub-producers over disjoint subslices, and values
// are copied out only when emitted.
func FromSlice[T any](items []T) api.Producer[T] {
	return sliceProducer[T]{items: items}
}

type sliceProducer[T any] struct {
	items []T
}

func (p sliceProducer[T]) Len() int { return len(p.items) }

func (p sliceProducer[T]) Split(at int) (left, right api.Producer[T]) {
	checkSplit(at, len(p.items))
	return sliceProducer[T]{items: p.items[:at]}, sliceProducer[T]{items: p.items[at:]}
}

func (p sliceProducer[T]) Emit(yield func(T) bool) {
	for _, v := range p.items {
		if !yield(v) {
			return
		}
	}
}

// Func returns a producer of the n values f(0), f(1), ..., f(n-1), computed
// lazily at emission. Sub-producers obtained from Split may be consumed
// concurrently, so f is invoked out of order and from multiple goroutines,
// exactly once per index; it must tolerate that.
func Func[T any](n int, f func(int) T) api.Producer[T] {
	if n < 0 {
		panic("producer: negative length")
	}
	return funcProducer[T]{lo: 0, hi: n, f: f}
}

type funcProducer[T any] struct {
	lo, hi int
	f      func(int) T
}

func (p funcProducer[T]) Len() int { return p.hi - p.lo }

func (p funcProducer[T]) Split(at int) (left, right api.Producer[T]) {
	checkSplit(at, p.hi-p.lo)
	mid := p.lo + at
	return funcProducer[T]{lo: p.lo, hi: mid, f: p.f}, funcProducer[T]{lo: mid, hi: p.hi, f: p.f}
}

func (p funcProducer[T]) Emit(yield func(T) bool) {
	for i := p.lo; i < p.hi; i++ {
		if !yield(p.f(i)) {
			return
		}
	}
}

// RepeatN returns a producer of n copies of v.
func RepeatN[T any](v T, n int) api.Producer[T] {
	if n < 0 {
		panic("producer: negative length")
	}
	return repeatProducer[T]{v: v, n: n}
}

type repeatProducer[T any] struct {
	v T
	n int
}

func (p repeatProducer[T]) Len() int { return p.n }

func (p repeatProducer[T]) Split(at int) (left, right api.Producer[T]) {
	checkSplit(at, p.n)
	return repeatProducer[T]{v: p.v, n: at}, repeatProducer[T]{v: p.v, n: p.n - at}
}

func (p repeatProducer[T]) Emit(yield func(T) bool) {
	for i := 0; i < p.n; i++ {
		if !yield(p.v) {
			return
		}
	}
}
