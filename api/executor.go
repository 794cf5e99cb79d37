// File: api/executor.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Executor contract for parallel task dispatch.

package api

// Executor abstracts the work-distribution engine a fill fans out onto.
// The library ships a worker-pool implementation in package exec and a
// sequential stand-in in package fake; any engine that can run independent
// tasks satisfies the contract.
type Executor interface {
	// Submit schedules task for execution. Tasks carry no ordering
	// relationship to each other.
	Submit(task func()) error

	// NumWorkers returns the current number of active worker routines.
	// Callers use it to size work partitions.
	NumWorkers() int
}
