// File: exec/default.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package exec

import "sync"

var (
	defaultOnce sync.Once
	defaultPool *Pool
)

// Default returns a process-wide Pool so independent fills share one set of
// workers instead of each spinning up their own. It is created on first use
// with default configuration and is never closed.
func Default() *Pool {
	defaultOnce.Do(func() {
		defaultPool = NewPool(Config{})
	})
	return defaultPool
}
