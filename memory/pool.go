package memory

import "sync"

// Pool is a thread-safe allocator that reuses freed blocks.
//
// Blocks are grouped by size, so canvases of the same dimensions and
// format share buckets. A pool may be shared between canvases.
type Pool struct {
	mu      sync.Mutex
	buckets map[int][][]byte
	maxSize int // max blocks per bucket
}

// NewPool creates a pool that retains at most maxPerBucket blocks of each size.
// A maxPerBucket of 0 means unlimited (use with caution).
func NewPool(maxPerBucket int) *Pool {
	return &Pool{
		buckets: make(map[int][][]byte),
		maxSize: maxPerBucket,
	}
}

// Alloc returns a pooled block of size bytes, or a new one if the bucket is empty.
func (p *Pool) Alloc(size int) ([]byte, error) {
	if size <= 0 {
		return nil, ErrInvalidSize
	}

	p.mu.Lock()
	bucket := p.buckets[size]
	if n := len(bucket); n > 0 {
		block := bucket[n-1]
		bucket[n-1] = nil
		p.buckets[size] = bucket[:n-1]
		p.mu.Unlock()
		return block, nil
	}
	p.mu.Unlock()

	return make([]byte, size), nil
}

// Free returns block to the pool. The block is cleared before it is stored.
// If the bucket is at capacity the block is discarded.
func (p *Pool) Free(block []byte) error {
	if len(block) == 0 {
		return ErrInvalidBlock
	}
	block = block[:cap(block)]
	clear(block)

	p.mu.Lock()
	defer p.mu.Unlock()

	size := len(block)
	bucket := p.buckets[size]
	if p.maxSize > 0 && len(bucket) >= p.maxSize {
		return nil
	}
	p.buckets[size] = append(bucket, block)
	return nil
}

// Len returns the number of idle blocks of the given size.
func (p *Pool) Len(size int) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.buckets[size])
}
