package sharedbytes

import (
	"bytes"
	"fmt"
	"sync/atomic"
	"unsafe"

	"github.com/cespare/xxhash/v2"

	"github.com/vorot93/lifetimed-bytes/internal/bytesconv"
)

// owner pairs one allocation with its reference count and release hook.
// A nil free hook means the allocation is GC-managed and release does
// nothing beyond bookkeeping.
type owner struct {
	refs atomic.Int32
	free func([]byte)
	data []byte
}

func newOwner(data []byte, free func([]byte)) *owner {
	o := &owner{data: data, free: free}
	o.refs.Store(1)
	return o
}

func (o *owner) retain() {
	if o == nil {
		return
	}
	if o.refs.Add(1) <= 1 {
		panic("sharedbytes: retain of freed buffer")
	}
}

func (o *owner) release() {
	if o == nil {
		return
	}
	n := o.refs.Add(-1)
	if n < 0 {
		panic("sharedbytes: release of freed buffer")
	}
	if n == 0 {
		if o.free != nil {
			o.free(o.data)
		}
		o.data = nil
	}
}

// Buffer is a handle denoting a sub-range of a shared, immutable allocation.
// The zero value is an empty buffer ready for use.
type Buffer struct {
	owner *owner
	data  []byte
}

// New returns an empty buffer.
func New() Buffer {
	return Buffer{}
}

// FromBytes takes ownership of p without copying. The caller must not modify
// p afterwards. The allocation is GC-managed.
func FromBytes(p []byte) Buffer {
	if len(p) == 0 {
		return Buffer{}
	}
	return Buffer{owner: newOwner(p, nil), data: p}
}

// Copy clones p into a fresh allocation, leaving the caller free to reuse p.
func Copy(p []byte) Buffer {
	c := make([]byte, len(p))
	copy(c, p)
	return FromBytes(c)
}

// FromString wraps the bytes of s without copying. Safe because Go strings
// are immutable, matching the buffer's own immutability contract.
func FromString(s string) Buffer {
	return FromBytes(bytesconv.Bytes(s))
}

// WithFree takes ownership of p and runs free(p) when the last handle over
// the allocation is released.
func WithFree(p []byte, free func([]byte)) Buffer {
	if len(p) == 0 {
		return Buffer{}
	}
	return Buffer{owner: newOwner(p, free), data: p}
}

// Alias wraps caller-owned memory without taking ownership. The resulting
// buffer participates in no reference counting: Release is a no-op and the
// caller must keep p valid while any derived handle is in use.
func Alias(p []byte) Buffer {
	return Buffer{data: p}
}

// Len returns the number of bytes the handle currently denotes.
func (b Buffer) Len() int {
	return len(b.data)
}

// IsEmpty reports whether the handle denotes zero bytes.
func (b Buffer) IsEmpty() bool {
	return len(b.data) == 0
}

// Data returns the denoted bytes without copying. The slice must be treated
// as read-only; it stays valid as long as the handle (or a clone of it) does.
func (b Buffer) Data() []byte {
	return b.data
}

// String returns a copy of the denoted bytes as a string.
func (b Buffer) String() string {
	return string(b.data)
}

// At returns the byte at index i. Panics if i is out of range.
func (b Buffer) At(i int) byte {
	return b.data[i]
}

// Sum64 returns the xxHash64 digest of the denoted bytes.
func (b Buffer) Sum64() uint64 {
	return xxhash.Sum64(b.data)
}

// Equal reports whether both handles denote the same byte content. Handles
// over different allocations compare equal if their bytes match.
func (b Buffer) Equal(o Buffer) bool {
	return bytes.Equal(b.data, o.data)
}

// Compare orders two handles lexicographically over their byte content,
// returning -1, 0, or +1.
func (b Buffer) Compare(o Buffer) int {
	return bytes.Compare(b.data, o.data)
}

// Clone returns a new handle denoting the same range, incrementing the
// allocation's reference count. No bytes are copied.
func (b Buffer) Clone() Buffer {
	b.owner.retain()
	return b
}

// Release drops this handle's reference. When the last handle over a managed
// allocation releases, the allocation's release hook runs. The handle is
// reset to empty either way. Releasing an empty or aliased buffer is a no-op.
func (b *Buffer) Release() {
	b.owner.release()
	b.owner = nil
	b.data = nil
}

// share returns a sibling handle over view, which must alias b's allocation.
func (b Buffer) share(view []byte) Buffer {
	b.owner.retain()
	return Buffer{owner: b.owner, data: view}
}

// Slice returns a handle over bytes [i, j) of the current view, sharing the
// allocation. Panics if the range is out of bounds.
func (b Buffer) Slice(i, j int) Buffer {
	if i < 0 || j < i || j > len(b.data) {
		panic(fmt.Sprintf("sharedbytes: slice bounds [%d:%d] out of range for length %d", i, j, len(b.data)))
	}
	return b.share(b.data[i:j])
}

// SliceFrom is Slice(i, Len()).
func (b Buffer) SliceFrom(i int) Buffer {
	return b.Slice(i, len(b.data))
}

// SliceTo is Slice(0, j).
func (b Buffer) SliceTo(j int) Buffer {
	return b.Slice(0, j)
}

// SliceRef returns a handle denoting exactly sub, which must be a sub-slice
// of the current view (verified by pointer containment, not content). An
// empty sub yields an empty buffer. Panics if sub does not alias b.
func (b Buffer) SliceRef(sub []byte) Buffer {
	if len(sub) == 0 {
		return Buffer{}
	}
	if len(b.data) == 0 {
		panic("sharedbytes: SliceRef of non-empty slice on empty buffer")
	}
	base := uintptr(unsafe.Pointer(&b.data[0]))
	first := uintptr(unsafe.Pointer(&sub[0]))
	if first < base || first+uintptr(len(sub)) > base+uintptr(len(b.data)) {
		panic("sharedbytes: SliceRef slice is not contained in buffer")
	}
	off := int(first - base)
	return b.share(b.data[off : off+len(sub)])
}

// SplitOff splits the handle at byte offset at: the receiver retains
// [0, at), the returned handle denotes [at, Len()). Both share the
// allocation. Panics if at is out of range.
func (b *Buffer) SplitOff(at int) Buffer {
	if at < 0 || at > len(b.data) {
		panic(fmt.Sprintf("sharedbytes: split offset %d out of range for length %d", at, len(b.data)))
	}
	tail := b.share(b.data[at:])
	b.data = b.data[:at]
	return tail
}

// SplitTo is the inverse of SplitOff: the receiver retains [at, Len()), the
// returned handle denotes [0, at). Panics if at is out of range.
func (b *Buffer) SplitTo(at int) Buffer {
	if at < 0 || at > len(b.data) {
		panic(fmt.Sprintf("sharedbytes: split offset %d out of range for length %d", at, len(b.data)))
	}
	head := b.share(b.data[:at])
	b.data = b.data[at:]
	return head
}

// Truncate shrinks the view to at most n bytes. A no-op if n >= Len().
// Panics if n is negative.
func (b *Buffer) Truncate(n int) {
	if n < 0 {
		panic("sharedbytes: negative truncate length")
	}
	if n < len(b.data) {
		b.data = b.data[:n]
	}
}

// Clear empties the view. Equivalent to Truncate(0).
func (b *Buffer) Clear() {
	b.data = b.data[:0]
}

// Remaining returns the number of unconsumed bytes. Identical to Len; named
// for cursor-style use together with Chunk and Advance.
func (b Buffer) Remaining() int {
	return len(b.data)
}

// Chunk returns the unconsumed bytes without copying, read-only.
func (b Buffer) Chunk() []byte {
	return b.data
}

// Advance consumes n bytes from the front of the view. Panics if n exceeds
// Remaining; it never clamps.
func (b *Buffer) Advance(n int) {
	if n < 0 || n > len(b.data) {
		panic(fmt.Sprintf("sharedbytes: cannot advance %d bytes, %d remaining", n, len(b.data)))
	}
	b.data = b.data[n:]
}

// SameAllocation reports whether both handles view the same underlying
// allocation. Empty handles never share.
func (b Buffer) SameAllocation(o Buffer) bool {
	if len(b.data) == 0 || len(o.data) == 0 {
		return false
	}
	bs := uintptr(unsafe.Pointer(&b.data[0]))
	be := bs + uintptr(len(b.data))
	os := uintptr(unsafe.Pointer(&o.data[0]))
	oe := os + uintptr(len(o.data))
	return bs < oe && os < be || b.owner != nil && b.owner == o.owner
}
