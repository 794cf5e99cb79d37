// File: array/doc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Package array provides the two halves of the fixed-array lifecycle:
// Uninit, a write-only staging buffer whose slots are populated exactly
// once each before the buffer is promoted, and Fixed, the fully-initialized
// fixed-length array a promotion yields.
//
// The split exists so that calling code can never read a slot that has not
// been written: Uninit has no read accessors, and Promote is the single
// narrow boundary between the two states.
package array
