//go:build linux

// File: exec/pin_linux.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Linux CPU pinning for pool workers via sched_setaffinity. Pure Go, no
// cgo required.

package exec

import (
	"log/slog"
	"runtime"

	"golang.org/x/sys/unix"
)

// pinThread locks the calling goroutine to its OS thread and binds that
// thread to a CPU chosen round-robin from the worker id.
func pinThread(id int, logger *slog.Logger) {
	runtime.LockOSThread()
	cpu := id % runtime.NumCPU()
	var set unix.CPUSet
	set.Zero()
	set.Set(cpu)
	if err := unix.SchedSetaffinity(0, &set); err != nil && logger != nil {
		logger.Warn("exec: failed to pin worker thread", "cpu", cpu, "err", err)
	}
}
