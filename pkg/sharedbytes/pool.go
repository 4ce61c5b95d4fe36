package sharedbytes

import "sync"

// Pool hands out buffers backed by reusable fixed-capacity allocations.
// Storage returns to the pool when the last handle over it is released, so
// callers that release their handles get allocation-free steady-state reads.
type Pool struct {
	size int
	pool sync.Pool
}

// NewPool creates a pool of allocations of the given capacity in bytes.
func NewPool(size int) *Pool {
	if size <= 0 {
		panic("sharedbytes: pool size must be positive")
	}
	p := &Pool{size: size}
	p.pool.New = func() any {
		b := make([]byte, size)
		return &b
	}
	return p
}

// Size returns the capacity of the pool's allocations.
func (p *Pool) Size() int {
	return p.size
}

// Copy clones src into pooled storage and returns a reference-counted buffer
// over it. When the last handle releases, the storage returns to the pool.
// Sources larger than the pool's capacity fall back to a plain allocation.
func (p *Pool) Copy(src []byte) Buffer {
	if len(src) == 0 {
		return Buffer{}
	}
	if len(src) > p.size {
		return Copy(src)
	}
	raw := p.pool.Get().(*[]byte)
	n := copy(*raw, src)
	return WithFree((*raw)[:n], func([]byte) {
		p.pool.Put(raw)
	})
}
