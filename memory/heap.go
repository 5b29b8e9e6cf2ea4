package memory

// Heap allocates blocks with make and leaves freeing to the garbage collector.
type Heap struct{}

// Alloc returns a new zeroed block of size bytes.
func (Heap) Alloc(size int) ([]byte, error) {
	if size <= 0 {
		return nil, ErrInvalidSize
	}
	return make([]byte, size), nil
}

// Free drops the block. The memory is reclaimed by the garbage collector.
func (Heap) Free(block []byte) error {
	if len(block) == 0 {
		return ErrInvalidBlock
	}
	return nil
}
