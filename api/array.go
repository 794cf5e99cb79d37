// File: api/array.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Fixed-capacity container contract: the sink half of the fill protocol.

package api

// FixedCapacity is implemented by containers whose slot count is fixed at
// construction and which can expose their backing storage for partitioned
// parallel writes.
//
// MutSlice requires exclusive access to the container. Disjoint subslices of
// the returned slice may be written from different goroutines with no
// additional synchronization; that property is what makes concurrent writes
// into a single container memory-safe.
type FixedCapacity[T any] interface {
	// Cap reports the container's fixed slot count.
	Cap() int

	// MutSlice returns a mutable view over all Cap slots of backing storage.
	MutSlice() []T
}
