// File: doc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

// Package parfill populates fixed-capacity arrays entirely in parallel.
//
// A fill allocates a write-only staging buffer, partitions its index range
// into disjoint chunks, writes every slot exactly once from concurrent
// workers, and then promotes the buffer to an array.Fixed value. Calling
// code never observes a partially-initialized array, and the element type
// needs no placeholder or sentinel value: unwritten slots are simply
// unreachable until promotion.
//
// Write order across slots is not deterministic and must not be relied on;
// the single ordering guarantee is index correspondence, meaning producer
// item i always lands in slot i.
//
// There are three entry points. FromFunc builds an array from an
// index-to-value function and cannot fail:
//
//	squares := parfill.FromFunc(50, func(i int) uint64 {
//		return uint64(i) * uint64(i)
//	})
//
// FromProducer builds an array from any api.Producer; it reports false when
// the producer holds fewer items than the requested length, without
// allocating or consuming anything:
//
//	arr, ok := parfill.FromProducer(4, producer.FromSlice([]int{1, 2, 3, 4}))
//
// Fill populates a caller-supplied api.FixedCapacity container in place
// under the same length policy.
//
// Work distribution is delegated to an api.Executor: the process-wide
// exec.Default() pool unless WithExecutor overrides it.
package parfill
