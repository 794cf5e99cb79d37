// File: array/fixed_test.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package array

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewFixed(t *testing.T) {
	a := NewFixed[int](3)
	assert.Equal(t, 3, a.Len())
	assert.Equal(t, 3, a.Cap())
	assert.Equal(t, []int{0, 0, 0}, a.Slice())
}

func TestNewFixedNegativePanics(t *testing.T) {
	assert.Panics(t, func() { NewFixed[int](-1) })
}

func TestMutSliceSharesStorage(t *testing.T) {
	a := NewFixed[int](2)
	a.MutSlice()[1] = 42
	assert.Equal(t, 42, a.At(1))
	assert.Equal(t, []int{0, 42}, a.Slice())
}
