// File: exec/group.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// One-shot bounded executor built on errgroup, for callers that want a
// fill's worth of parallelism without keeping a pool alive.

package exec

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Group runs tasks on at most limit concurrent goroutines spawned on
// demand. Unlike Pool it owns no persistent workers; call Wait after the
// last Submit to release the goroutines.
//
// Group does not recover task panics; callers that need isolation must
// recover inside the task.
type Group struct {
	eg    errgroup.Group
	limit int
}

// NewGroup creates a Group limited to the given number of concurrent
// tasks. Defaults to runtime.NumCPU() when limit <= 0.
func NewGroup(limit int) *Group {
	if limit <= 0 {
		limit = runtime.NumCPU()
	}
	g := &Group{limit: limit}
	g.eg.SetLimit(limit)
	return g
}

// Submit runs task on a pooled goroutine, blocking while the concurrency
// limit is saturated. Always returns nil; the error return satisfies
// api.Executor.
func (g *Group) Submit(task func()) error {
	g.eg.Go(func() error {
		task()
		return nil
	})
	return nil
}

// NumWorkers returns the concurrency limit.
func (g *Group) NumWorkers() int { return g.limit }

// Wait blocks until every submitted task has finished.
func (g *Group) Wait() {
	_ = g.eg.Wait()
}
