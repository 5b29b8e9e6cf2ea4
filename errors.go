package pxl

import (
	"errors"
	"fmt"
)

// Errors returned by Canvas operations. Use errors.Is to test for them.
var (
	// ErrInvalidState is returned when an operation needs an allocated canvas
	// but the canvas is empty.
	ErrInvalidState = errors.New("pxl: canvas not allocated")

	// ErrInvalidArgument is returned for bad dimensions or formats at allocation
	// and for coordinates outside the canvas passed to address operations.
	ErrInvalidArgument = errors.New("pxl: invalid argument")

	// ErrAllocation is matched by every *AllocationError.
	ErrAllocation = errors.New("pxl: failed to allocate pixel memory")

	// ErrRelease is matched by every *ReleaseError.
	ErrRelease = errors.New("pxl: failed to release pixel memory")
)

// AllocationError reports that the allocator could not provide a block.
// The canvas is left empty.
type AllocationError struct {
	Size int   // requested block size in bytes
	Err  error // allocator error
}

func (e *AllocationError) Error() string {
	return fmt.Sprintf("%v (%d bytes): %v", ErrAllocation, e.Size, e.Err)
}

func (e *AllocationError) Unwrap() error { return e.Err }

// Is reports whether target is ErrAllocation.
func (e *AllocationError) Is(target error) bool { return target == ErrAllocation }

// ReleaseError reports that the allocator failed to free a block.
// The canvas has still been reset to empty and can be allocated again.
type ReleaseError struct {
	Err error // allocator error
}

func (e *ReleaseError) Error() string {
	return fmt.Sprintf("%v: %v", ErrRelease, e.Err)
}

func (e *ReleaseError) Unwrap() error { return e.Err }

// Is reports whether target is ErrRelease.
func (e *ReleaseError) Is(target error) bool { return target == ErrRelease }

// invalidArg wraps ErrInvalidArgument with a formatted detail.
func invalidArg(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}
