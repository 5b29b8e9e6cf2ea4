// Package memory provides block allocators for pxl canvases.
//
// A canvas asks its allocator for one contiguous block of stride*height
// bytes when it is allocated and hands the same block back when it is
// released. Blocks are not guaranteed to be zeroed; callers that need a
// blank canvas clear it explicitly.
//
// Three allocators are provided:
//   - [Heap] allocates from the Go heap and is the default.
//   - [Pool] recycles blocks of identical size between canvases.
//   - [Mmap] maps anonymous memory outside the Go heap (unix only).
package memory

import "errors"

// Common allocator errors.
var (
	// ErrInvalidSize is returned when a block of zero or negative size is requested.
	ErrInvalidSize = errors.New("memory: invalid block size")

	// ErrInvalidBlock is returned when a nil or empty block is freed.
	ErrInvalidBlock = errors.New("memory: invalid block")

	// ErrUnsupported is returned by allocators that do not work on this platform.
	ErrUnsupported = errors.New("memory: allocator not supported on this platform")
)
