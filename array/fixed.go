// File: array/fixed.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package array

// Fixed is a fixed-length array of T. Its length is set at construction and
// never changes, and every slot holds a valid value once the array is
// observable: instances come either from NewFixed (zero-valued slots) or
// from promoting an Uninit buffer whose slots have all been written.
type Fixed[T any] struct {
	slots []T
}

// NewFixed returns a Fixed of length n with zero-valued slots. It is the
// reusable-sink form: an existing Fixed can be repopulated in place via
// parfill.Fill. Panics if n is negative.
func NewFixed[T any](n int) *Fixed[T] {
	if n < 0 {
		panic("array: negative length")
	}
	return &Fixed[T]{slots: make([]T, n)}
}

// Len returns the array's fixed length.
func (a *Fixed[T]) Len() int { return len(a.slots) }

// Cap returns the fixed slot count. Equal to Len; present to satisfy
// api.FixedCapacity.
func (a *Fixed[T]) Cap() int { return len(a.slots) }

// At returns the value in slot i.
func (a *Fixed[T]) At(i int) T { return a.slots[i] }

// Slice returns a read view over all slots. Callers must not mutate it
// while the array is shared.
func (a *Fixed[T]) Slice() []T { return a.slots }

// MutSlice returns a mutable view over the backing storage. Requires
// exclusive access to the array; disjoint subslices may then be written
// concurrently.
func (a *Fixed[T]) MutSlice() []T { return a.slots }
