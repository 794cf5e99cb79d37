// File: parfill.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Entry points and the partitioned fill algorithm.

package parfill

import (
	"sync"
	"sync/atomic"

	"github.com/momentics/parfill/api"
	"github.com/momentics/parfill/array"
	"github.com/momentics/parfill/exec"
	"github.com/momentics/parfill/producer"
)

// defaultGrain is the minimum chunk length handed to a single task. Fills
// shorter than the grain run as one task.
const defaultGrain = 512

// chunksPerWorker oversubscribes the partition so uneven chunk costs still
// spread across workers.
const chunksPerWorker = 4

// Option adjusts how a fill distributes its work.
type Option func(*config)

type config struct {
	exec  api.Executor
	grain int
}

// WithExecutor routes the fill's tasks through e instead of the
// process-wide exec.Default() pool.
func WithExecutor(e api.Executor) Option {
	return func(c *config) { c.exec = e }
}

// WithGrain sets the minimum chunk length per task. Values below 1 are
// ignored.
func WithGrain(grain int) Option {
	return func(c *config) {
		if grain >= 1 {
			c.grain = grain
		}
	}
}

func newConfig(opts []Option) config {
	cfg := config{grain: defaultGrain}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.exec == nil {
		cfg.exec = exec.Default()
	}
	return cfg
}

// FromFunc builds a Fixed array of length n whose slot i holds f(i). The
// indices are partitioned across the executor's workers, so f is invoked
// out of order, concurrently, and exactly once per index; it must be pure
// with respect to shared state or tolerate that invocation pattern. The
// synthesized index producer always matches n exactly, so FromFunc cannot
// fail. Panics if n is negative.
//
// f must not start a nested fill on the same pool executor: the worker
// blocked in the outer join holds sub-tasks no other worker can take, which
// can deadlock the pool. Route nested fills through a separate executor,
// such as exec.NewGroup or fake.SequentialExecutor.
func FromFunc[T any](n int, f func(int) T, opts ...Option) *array.Fixed[T] {
	out, _ := FromProducer(n, producer.Func(n, f), opts...)
	return out
}

// FromProducer builds a Fixed array of length n from src.
//
// When src reports fewer than n items, FromProducer returns (nil, false)
// before any storage is allocated or any item emitted. When src reports
// more, only the first n items are consumed and the remainder is never
// emitted. Otherwise every item is written to its slot by concurrent
// workers over disjoint index ranges, and the call returns once all writes
// have completed. Panics if n is negative.
//
// Like FromFunc, a producer must not start a nested fill on the same pool
// executor; the blocked worker can deadlock the pool.
func FromProducer[T any](n int, src api.Producer[T], opts ...Option) (*array.Fixed[T], bool) {
	if n < 0 {
		panic("parfill: negative length")
	}
	if n == 0 {
		return array.NewFixed[T](0), true
	}
	if src.Len() < n {
		return nil, false
	}
	// Sufficient length is established, so every slot below is guaranteed a
	// writer and the buffer can be promoted unconditionally after the join.
	buf := array.NewUninit[T](n)
	fanOut(newConfig(opts), buf.MutSlice(), src)
	return buf.Promote(), true
}

// Fill populates dst in place from src under the same length policy as
// FromProducer: false when src is shorter than dst.Cap(), with dst
// untouched; first-Cap truncation when src is longer. The caller must hold
// exclusive access to dst for the duration of the call.
func Fill[T any](dst api.FixedCapacity[T], src api.Producer[T], opts ...Option) bool {
	n := dst.Cap()
	if n == 0 {
		return true
	}
	if src.Len() < n {
		return false
	}
	fanOut(newConfig(opts), dst.MutSlice(), src)
	return true
}

// fanOut pairs contiguous chunks of dst with sub-producers split at the
// same cut points, runs one task per pair on the executor, and blocks until
// every write has completed. len(dst) must be at least 1 and src must hold
// at least len(dst) items.
//
// A panic raised by a producer (or by the function behind one) is captured
// on the worker, the join still completes, and the first such panic is
// re-raised on the calling goroutine so no partially-filled array escapes
// silently.
func fanOut[T any](cfg config, dst []T, src api.Producer[T]) {
	n := len(dst)
	chunk := chunkLen(n, cfg.grain, cfg.exec.NumWorkers())

	var (
		wg         sync.WaitGroup
		firstPanic atomic.Value
	)
	// rest always holds at least n-lo items, so every Split below is in
	// range. After the last chunk is detached, rest is the unconsumed tail
	// of an over-length producer and is dropped without being emitted.
	rest := src
	for lo := 0; lo < n; lo += chunk {
		hi := min(lo+chunk, n)
		var part api.Producer[T]
		part, rest = rest.Split(hi - lo)
		out := dst[lo:hi]

		wg.Add(1)
		task := func() {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					firstPanic.CompareAndSwap(nil, &capturedPanic{val: r})
				}
			}()
			writeChunk(out, part)
		}
		if err := cfg.exec.Submit(task); err != nil {
			// Degraded mode: the executor refused the task, run it inline.
			task()
		}
	}
	wg.Wait()

	if p := firstPanic.Load(); p != nil {
		panic(p.(*capturedPanic).val)
	}
}

type capturedPanic struct{ val any }

// writeChunk moves each emitted item into its slot, in index order within
// the chunk. Split already sized part to the chunk exactly; the yield result
// additionally caps emission at the chunk length so a producer that
// over-reports its length cannot write past its range.
func writeChunk[T any](out []T, part api.Producer[T]) {
	i := 0
	part.Emit(func(v T) bool {
		out[i] = v
		i++
		return i < len(out)
	})
}

// chunkLen sizes chunks so the partition yields roughly chunksPerWorker
// chunks per worker without dropping below the grain.
func chunkLen(n, grain, workers int) int {
	if workers < 1 {
		workers = 1
	}
	parts := workers * chunksPerWorker
	c := (n + parts - 1) / parts
	if c < grain {
		c = grain
	}
	return c
}
