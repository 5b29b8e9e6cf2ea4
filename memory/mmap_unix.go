//go:build unix

package memory

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// Mmap allocates each block as a private anonymous mapping.
// The block lives outside the Go heap until Free unmaps it.
type Mmap struct{}

// Alloc maps size bytes of zeroed, readable and writable memory.
func (Mmap) Alloc(size int) ([]byte, error) {
	if size <= 0 {
		return nil, ErrInvalidSize
	}
	block, err := unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, fmt.Errorf("memory: mmap %d bytes: %w", size, err)
	}
	return block, nil
}

// Free unmaps a block returned by Alloc.
func (Mmap) Free(block []byte) error {
	if len(block) == 0 {
		return ErrInvalidBlock
	}
	if err := unix.Munmap(block); err != nil {
		return fmt.Errorf("memory: munmap: %w", err)
	}
	return nil
}
