// File: api/doc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Package api defines the capability contracts the parfill library is
// assembled from: indexed producers (the source half of a fill), fixed
// capacity containers (the sink half), and the executor that distributes
// partitioned work across goroutines.
//
// The package is dependency-free so that external engines and containers
// can satisfy the contracts without importing the rest of the module.
package api
