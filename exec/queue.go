// File: exec/queue.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Bounded multi-producer/multi-consumer ring buffer for worker task queues.
// Each slot carries a sequence tag; a producer claims a slot by advancing
// the tail cursor with CAS and publishes the value by bumping the slot tag,
// so producers and consumers synchronize per slot without a lock.

package exec

import "sync/atomic"

type ringSlot[T any] struct {
	seq uint64
	val T
}

// taskRing is a fixed-capacity MPMC queue. Capacity is rounded up to a
// power of two.
type taskRing[T any] struct {
	mask  uint64
	slots []ringSlot[T]
	_     [64]byte // keep the cursors on separate cache lines
	head  uint64
	_     [64]byte
	tail  uint64
}

// newTaskRing creates a queue with capacity rounded up to a power of two,
// at least 2: with a single slot the published sequence tag collides with
// the next enqueue's tail and the slot gets claimed while still occupied.
func newTaskRing[T any](capacity int) *taskRing[T] {
	size := 2
	for size < capacity {
		size <<= 1
	}
	q := &taskRing[T]{
		mask:  uint64(size - 1),
		slots: make([]ringSlot[T], size),
	}
	for i := range q.slots {
		q.slots[i].seq = uint64(i)
	}
	return q
}

// Enqueue adds val; returns false if the ring is full.
func (q *taskRing[T]) Enqueue(val T) bool {
	for {
		tail := atomic.LoadUint64(&q.tail)
		slot := &q.slots[tail&q.mask]
		seq := atomic.LoadUint64(&slot.seq)
		switch {
		case seq == tail:
			if atomic.CompareAndSwapUint64(&q.tail, tail, tail+1) {
				slot.val = val
				atomic.StoreUint64(&slot.seq, tail+1)
				return true
			}
		case seq < tail:
			return false
		}
	}
}

// Dequeue removes and returns an item; ok is false if the ring is empty.
func (q *taskRing[T]) Dequeue() (item T, ok bool) {
	for {
		head := atomic.LoadUint64(&q.head)
		slot := &q.slots[head&q.mask]
		seq := atomic.LoadUint64(&slot.seq)
		switch {
		case seq == head+1:
			if atomic.CompareAndSwapUint64(&q.head, head, head+1) {
				item = slot.val
				var zero T
				slot.val = zero
				atomic.StoreUint64(&slot.seq, head+q.mask+1)
				return item, true
			}
		case seq <= head:
			return item, false
		}
	}
}
