//go:build !unix

package memory

// Mmap is not available on this platform; every call fails with ErrUnsupported.
type Mmap struct{}

// Alloc always fails with ErrUnsupported.
func (Mmap) Alloc(size int) ([]byte, error) {
	return nil, ErrUnsupported
}

// Free always fails with ErrUnsupported.
func (Mmap) Free(block []byte) error {
	return ErrUnsupported
}
