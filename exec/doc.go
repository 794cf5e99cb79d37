// File: exec/doc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Package exec provides the work-distribution engines that satisfy
// api.Executor: Pool, a persistent worker pool with per-worker lock-free
// local queues, a FIFO overflow queue, and optional CPU pinning; and Group,
// a one-shot bounded engine over errgroup for callers that do not want a
// long-lived pool. Default returns a lazily-created process-wide Pool.
package exec
