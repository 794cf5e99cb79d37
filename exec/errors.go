// File: exec/errors.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Error definitions for the exec package.

package exec

import "errors"

// ErrPoolClosed indicates the pool has been shut down.
var ErrPoolClosed = errors.New("exec: pool is closed")
