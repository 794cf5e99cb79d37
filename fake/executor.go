// Author: momentics <momentics@gmail.com>
// SPDX-License-Identifier: MIT

// Package fake provides trivial stand-in implementations of the api
// contracts for tests and debugging.
package fake

// SequentialExecutor runs every task inline on the calling goroutine. It
// makes the fill algorithms fully deterministic, which is useful when
// bisecting a producer bug from a scheduling bug.
type SequentialExecutor struct{}

func (SequentialExecutor) Submit(task func()) error { task(); return nil }
func (SequentialExecutor) NumWorkers() int          { return 1 }
