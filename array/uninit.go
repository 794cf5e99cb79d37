// File: array/uninit.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Staging buffer for exactly-once parallel slot writes.

package array

import "sync/atomic"

// Uninit is the transient representation of n slots before the
// fully-initialized invariant holds. Every slot is logically Empty until a
// worker writes it through a disjoint subslice of MutSlice; the buffer
// exposes no read accessors, so an unwritten slot can never leak to calling
// code. Once every slot has been written, Promote reinterprets the storage
// as a Fixed array.
//
// Go's allocator zeroes the backing storage, so an Empty slot holds T's
// zero value rather than garbage; the Empty/Filled discipline here is about
// observability and exactly-once writes, not memory safety.
//
// The buffer is exclusively owned by one fill operation for its duration.
// Promote's precondition (all slots written) is enforced by the fill
// protocol ordering, not by per-slot runtime tags.
type Uninit[T any] struct {
	slots    []T
	promoted atomic.Bool
}

// NewUninit allocates a staging buffer for n slots, all Empty. Allocation
// runs no element constructors and requires nothing of T beyond a zero
// value. Panics if n is negative.
func NewUninit[T any](n int) *Uninit[T] {
	if n < 0 {
		panic("array: negative length")
	}
	return &Uninit[T]{slots: make([]T, n)}
}

// Cap reports the buffer's fixed slot count. Panics if the buffer has
// already been promoted, so a consumed buffer cannot pose as a valid
// zero-capacity sink.
func (b *Uninit[T]) Cap() int {
	if b.promoted.Load() {
		panic("array: Cap on promoted buffer")
	}
	return len(b.slots)
}

// MutSlice returns the mutable view workers partition for disjoint writes.
// Panics if the buffer has already been promoted.
func (b *Uninit[T]) MutSlice() []T {
	if b.promoted.Load() {
		panic("array: MutSlice on promoted buffer")
	}
	return b.slots
}

// Promote consumes the buffer and returns the storage as a Fixed array.
// Valid only once, and only after every slot has been written; the second
// condition is the caller's protocol obligation. A second Promote panics.
func (b *Uninit[T]) Promote() *Fixed[T] {
	if !b.promoted.CompareAndSwap(false, true) {
		panic("array: buffer promoted twice")
	}
	out := &Fixed[T]{slots: b.slots}
	b.slots = nil
	return out
}
