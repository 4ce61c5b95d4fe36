package lifetimed

import "github.com/vorot93/lifetimed-bytes/pkg/sharedbytes"

// Iter yields the bytes of a handle in order, exactly once, left to right.
// It is single-pass and non-restartable; Remaining reports the exact number
// of bytes left at every step.
type Iter[L Lifetime] struct {
	inner sharedbytes.Buffer
	guard *regionState
}

// IntoIter consumes the handle into an iterator over its bytes. The handle
// should not be used afterwards; the iterator takes over its reference on
// the allocation.
func (b Bytes[L]) IntoIter() *Iter[L] {
	b.live()
	return &Iter[L]{inner: b.inner, guard: b.guard}
}

// Next returns the next byte, or false once the iterator is exhausted.
func (it *Iter[L]) Next() (byte, bool) {
	it.guard.check()
	if it.inner.Len() == 0 {
		return 0, false
	}
	c := it.inner.At(0)
	it.inner.Advance(1)
	return c, true
}

// Remaining returns the exact number of bytes left to yield.
func (it *Iter[L]) Remaining() int {
	it.guard.check()
	return it.inner.Remaining()
}

// Release drops the iterator's reference on the underlying allocation.
func (it *Iter[L]) Release() {
	it.inner.Release()
	it.guard = nil
}
