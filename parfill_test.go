// File: parfill_test.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package parfill_test

import (
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/momentics/parfill"
	"github.com/momentics/parfill/api"
	"github.com/momentics/parfill/array"
	"github.com/momentics/parfill/exec"
	"github.com/momentics/parfill/fake"
	"github.com/momentics/parfill/producer"
)

// countingProducer wraps a producer and counts every emitted item across
// all sub-producers split off from it.
type countingProducer[T any] struct {
	inner   api.Producer[T]
	emitted *atomic.Int64
}

func countEmissions[T any](p api.Producer[T]) (api.Producer[T], *atomic.Int64) {
	var c atomic.Int64
	return countingProducer[T]{inner: p, emitted: &c}, &c
}

func (p countingProducer[T]) Len() int { return p.inner.Len() }

func (p countingProducer[T]) Split(at int) (left, right api.Producer[T]) {
	l, r := p.inner.Split(at)
	return countingProducer[T]{inner: l, emitted: p.emitted},
		countingProducer[T]{inner: r, emitted: p.emitted}
}

func (p countingProducer[T]) Emit(yield func(T) bool) {
	p.inner.Emit(func(v T) bool {
		p.emitted.Add(1)
		return yield(v)
	})
}

func TestFromFuncSquares(t *testing.T) {
	arr := parfill.FromFunc(50, func(i int) uint64 {
		return uint64(i) * uint64(i)
	}, parfill.WithGrain(4))

	require.Equal(t, 50, arr.Len())
	assert.Equal(t, uint64(49), arr.At(7))
	for i := 0; i < 50; i++ {
		assert.Equal(t, uint64(i)*uint64(i), arr.At(i), "slot %d", i)
	}
}

func TestFromFuncZeroLength(t *testing.T) {
	called := atomic.Int64{}
	arr := parfill.FromFunc(0, func(i int) int {
		called.Add(1)
		return i
	})
	require.Equal(t, 0, arr.Len())
	assert.Zero(t, called.Load())
}

func TestFromFuncNegativeLengthPanics(t *testing.T) {
	assert.Panics(t, func() {
		parfill.FromFunc(-1, func(i int) int { return i })
	})
}

func TestFromFuncIndexCorrespondenceAcrossExecutors(t *testing.T) {
	const n = 1000
	f := func(i int) int { return i*31 + 7 }

	executors := map[string]api.Executor{
		"sequential": fake.SequentialExecutor{},
		"group":      exec.NewGroup(4),
		"pool":       exec.Default(),
	}
	for name, e := range executors {
		t.Run(name, func(t *testing.T) {
			arr := parfill.FromFunc(n, f, parfill.WithExecutor(e), parfill.WithGrain(16))
			require.Equal(t, n, arr.Len())
			for i := 0; i < n; i++ {
				require.Equal(t, f(i), arr.At(i), "slot %d", i)
			}
		})
	}
}

func TestFromProducerExactLength(t *testing.T) {
	arr, ok := parfill.FromProducer(4, producer.FromSlice([]int{1, 2, 3, 4}))
	require.True(t, ok)
	assert.Equal(t, []int{1, 2, 3, 4}, arr.Slice())
}

func TestFromProducerShortReturnsFalseWithoutConsuming(t *testing.T) {
	src, emitted := countEmissions(producer.FromSlice([]int{1, 2, 3, 4}))

	arr, ok := parfill.FromProducer(10, src)
	assert.False(t, ok)
	assert.Nil(t, arr)
	assert.Zero(t, emitted.Load(), "a failed fill must not consume items")
}

func TestFromProducerLongTruncatesToFirstN(t *testing.T) {
	items := make([]int, 100)
	for i := range items {
		items[i] = i + 1
	}
	src, emitted := countEmissions(producer.FromSlice(items))

	arr, ok := parfill.FromProducer(4, src)
	require.True(t, ok)
	assert.Equal(t, []int{1, 2, 3, 4}, arr.Slice())
	assert.Equal(t, int64(4), emitted.Load(), "excess items must stay unconsumed")
}

func TestFromProducerEmitsExactlyN(t *testing.T) {
	const n = 333
	src, emitted := countEmissions(producer.Func(n, func(i int) int { return i }))

	arr, ok := parfill.FromProducer(n, src, parfill.WithGrain(10))
	require.True(t, ok)
	require.Equal(t, n, arr.Len())
	assert.Equal(t, int64(n), emitted.Load())
}

func TestFromProducerStringsRoundTrip(t *testing.T) {
	words := []string{"alpha", "beta", "gamma"}
	arr, ok := parfill.FromProducer(3, producer.FromSlice(words), parfill.WithGrain(1))
	require.True(t, ok)
	assert.Equal(t, words, arr.Slice())
}

func TestFromProducerZeroLength(t *testing.T) {
	arr, ok := parfill.FromProducer(0, producer.FromSlice([]string{"ignored"}))
	require.True(t, ok)
	assert.Equal(t, 0, arr.Len())

	arr, ok = parfill.FromProducer(0, producer.FromSlice([]string(nil)))
	require.True(t, ok)
	assert.Equal(t, 0, arr.Len())
}

func TestFillIntoFixed(t *testing.T) {
	dst := array.NewFixed[int](5)
	ok := parfill.Fill[int](dst, producer.RepeatN(7, 5))
	require.True(t, ok)
	assert.Equal(t, []int{7, 7, 7, 7, 7}, dst.Slice())

	// Refill the same container.
	ok = parfill.Fill[int](dst, producer.FromSlice([]int{5, 4, 3, 2, 1}))
	require.True(t, ok)
	assert.Equal(t, []int{5, 4, 3, 2, 1}, dst.Slice())
}

func TestFillShortProducerLeavesDstUntouched(t *testing.T) {
	dst := array.NewFixed[int](5)
	ok := parfill.Fill[int](dst, producer.FromSlice([]int{1, 2, 3, 4, 5}))
	require.True(t, ok)

	short := producer.FromSlice([]int{9, 9})
	assert.False(t, parfill.Fill[int](dst, short))
	assert.Equal(t, []int{1, 2, 3, 4, 5}, dst.Slice())
}

func TestFillZeroCapacity(t *testing.T) {
	dst := array.NewFixed[int](0)
	assert.True(t, parfill.Fill[int](dst, producer.FromSlice([]int{1, 2})))
}

func TestPanicInFuncPropagatesToCaller(t *testing.T) {
	assert.PanicsWithValue(t, "boom", func() {
		parfill.FromFunc(64, func(i int) int {
			if i == 13 {
				panic("boom")
			}
			return i
		}, parfill.WithGrain(1), parfill.WithExecutor(exec.NewGroup(4)))
	})
}

func TestClosedExecutorFallsBackInline(t *testing.T) {
	p := exec.NewPool(exec.Config{Workers: 2})
	p.Close()

	arr := parfill.FromFunc(100, func(i int) int { return i * 2 },
		parfill.WithExecutor(p), parfill.WithGrain(8))
	require.Equal(t, 100, arr.Len())
	for i := 0; i < 100; i++ {
		require.Equal(t, i*2, arr.At(i))
	}
}

func TestParallelHammer(t *testing.T) {
	const n = 1 << 16
	arr := parfill.FromFunc(n, func(i int) uint64 {
		return uint64(i)*3 + 1
	}, parfill.WithGrain(64))

	var sum, want uint64
	for i := 0; i < n; i++ {
		sum += arr.At(i)
		want += uint64(i)*3 + 1
	}
	if sum != want {
		t.Fatalf("checksum mismatch: got %d, want %d", sum, want)
	}
}

func ExampleFromFunc() {
	squares := parfill.FromFunc(8, func(i int) int { return i * i })
	fmt.Println(squares.Slice())
	// Output: [0 1 4 9 16 25 36 49]
}

func ExampleFromProducer() {
	arr, ok := parfill.FromProducer(4, producer.FromSlice([]int{1, 2, 3, 4}))
	fmt.Println(ok, arr.Slice())

	_, ok = parfill.FromProducer(10, producer.FromSlice([]int{1, 2, 3, 4}))
	fmt.Println(ok)
	// Output:
	// true [1 2 3 4]
	// false
}
