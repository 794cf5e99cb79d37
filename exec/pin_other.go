//go:build !linux

// File: exec/pin_other.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Stub pinning for platforms without sched_setaffinity support.

package exec

import (
	"log/slog"
	"runtime"
)

// pinThread locks the goroutine to its OS thread; CPU binding is not
// available on this platform.
func pinThread(_ int, _ *slog.Logger) {
	runtime.LockOSThread()
}
