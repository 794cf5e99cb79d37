// File: producer/doc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Package producer supplies the built-in api.Producer implementations:
// FromSlice over existing data, Func over an index-to-value function, and
// RepeatN for a repeated value. All three split in O(1) and emit in index
// order.
package producer
