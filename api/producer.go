// File: api/producer.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Indexed producer contract: an exact-length, splittable item source.

package api

// Producer is a source of exactly Len items, splittable into disjoint
// sub-producers that can be consumed independently and in parallel.
//
// Item order is significant: the fill protocol pairs producer item i with
// destination slot i, so implementations must emit items in index order and
// Split must preserve that order across both halves.
//
// Len is an exact count, not a lower bound. A producer that reports more
// items than Emit actually yields violates the contract; the fill algorithms
// do not re-verify it per item, and slots past the last emitted item are
// left holding the element type's zero value.
type Producer[T any] interface {
	// Len reports the exact number of items remaining in this producer.
	Len() int

	// Split partitions the producer at index at. The left half yields items
	// [0, at), the right half yields items [at, Len()). Both halves are
	// independent and may be consumed concurrently. Implementations panic
	// when at is outside [0, Len()].
	Split(at int) (left, right Producer[T])

	// Emit yields the producer's items in index order. Emission stops when
	// the producer is exhausted or yield returns false.
	Emit(yield func(T) bool)
}
