package lifetimed

import (
	"io"

	"github.com/vorot93/lifetimed-bytes/pkg/sharedbytes"

	"github.com/vorot93/lifetimed-bytes/internal/bytesconv"
)

// Bytes is a reference-counted, immutable byte-buffer handle tagged with the
// lifetime L of any borrowed memory used to construct it. The zero value is
// an empty handle.
//
// Storage, reference counting, and copy-free sub-slicing are delegated to
// sharedbytes.Buffer; this type adds the lifetime tag and, for region-bound
// handles, a run-time liveness guard.
type Bytes[L Lifetime] struct {
	inner sharedbytes.Buffer
	guard *regionState
}

// New returns an empty handle. An empty handle points into no memory, so it
// is trivially valid for any tag.
func New[L Lifetime]() Bytes[L] {
	return Bytes[L]{}
}

// FromBorrowed wraps p without copying and tags the handle with L.
//
// This is the module's caller-asserted bridge: the underlying buffer type
// has no notion of borrowing, so the borrow's true scope survives only as
// the tag L. It is sound because the storage is never written after
// construction and every accessor and derived value re-imposes L — provided
// the caller never uses the handle after the memory behind L's scope is
// freed or reused, and never widens the tag through further unsafe means.
// No runtime validation is performed; use Region.Bind for a checked variant.
func FromBorrowed[L Lifetime](p []byte) Bytes[L] {
	return Bytes[L]{inner: sharedbytes.Alias(p)}
}

// FromBorrowedString is FromBorrowed over the bytes of s, without copying.
// Same contract.
func FromBorrowedString[L Lifetime](s string) Bytes[L] {
	return FromBorrowed[L](bytesconv.Bytes(s))
}

// FromOwned takes ownership of p without copying. The caller must not modify
// p afterwards. No borrowing hazard remains, so the handle is Static.
func FromOwned(p []byte) Bytes[Static] {
	return Bytes[Static]{inner: sharedbytes.FromBytes(p)}
}

// FromShared wraps an already-constructed shared buffer directly, without
// copying. The buffer manages its own storage, so the handle is Static.
func FromShared(b sharedbytes.Buffer) Bytes[Static] {
	return Bytes[Static]{inner: b}
}

// FromReader collects r into owned storage and returns a Static handle.
func FromReader(r io.Reader) (Bytes[Static], error) {
	p, err := io.ReadAll(r)
	if err != nil {
		return Bytes[Static]{}, err
	}
	return FromOwned(p), nil
}

// IntoShared converts a handle back to the bare shared buffer type, sharing
// the allocation without copying. Only Static handles convert: passing a
// borrowed-tag value does not compile, which is what keeps still-borrowed
// memory from escaping into a context with no lifetime enforcement.
func IntoShared(b Bytes[Static]) sharedbytes.Buffer {
	return b.inner
}

// live panics if the handle is bound to a closed region.
func (b Bytes[L]) live() {
	b.guard.check()
}

// derive wraps a sibling buffer in a handle with the same tag and guard.
func (b Bytes[L]) derive(inner sharedbytes.Buffer) Bytes[L] {
	return Bytes[L]{inner: inner, guard: b.guard}
}

// Len returns the number of bytes the handle currently denotes.
func (b Bytes[L]) Len() int {
	b.live()
	return b.inner.Len()
}

// IsEmpty reports whether the handle denotes zero bytes.
func (b Bytes[L]) IsEmpty() bool {
	b.live()
	return b.inner.IsEmpty()
}

// Data returns the denoted bytes without copying. The slice is read-only and
// constrained by L: it must not outlive the borrow the handle was built from.
func (b Bytes[L]) Data() []byte {
	b.live()
	return b.inner.Data()
}

// String returns a copy of the denoted bytes as a string.
func (b Bytes[L]) String() string {
	b.live()
	return b.inner.String()
}

// At returns the byte at index i. Panics if i is out of range.
func (b Bytes[L]) At(i int) byte {
	b.live()
	return b.inner.At(i)
}

// Sum64 returns the xxHash64 digest of the denoted bytes.
func (b Bytes[L]) Sum64() uint64 {
	b.live()
	return b.inner.Sum64()
}

// Clone returns a new handle over the same range and tag, incrementing the
// allocation's reference count. No bytes are copied.
func (b Bytes[L]) Clone() Bytes[L] {
	b.live()
	return b.derive(b.inner.Clone())
}

// Release drops the handle's reference on the underlying allocation and
// resets it to empty. A no-op for borrowed (aliased) handles, whose memory
// the caller owns.
func (b *Bytes[L]) Release() {
	b.inner.Release()
	b.guard = nil
}

// Slice returns a handle over bytes [i, j) of the current view, sharing the
// allocation and keeping the tag. Panics if the range is out of bounds.
func (b Bytes[L]) Slice(i, j int) Bytes[L] {
	b.live()
	return b.derive(b.inner.Slice(i, j))
}

// SliceFrom is Slice(i, Len()).
func (b Bytes[L]) SliceFrom(i int) Bytes[L] {
	b.live()
	return b.derive(b.inner.SliceFrom(i))
}

// SliceTo is Slice(0, j).
func (b Bytes[L]) SliceTo(j int) Bytes[L] {
	b.live()
	return b.derive(b.inner.SliceTo(j))
}

// SliceRef returns a handle denoting exactly sub, which must be a sub-slice
// of the current view (verified by pointer containment, not content).
// Panics if sub does not alias the handle's view.
func (b Bytes[L]) SliceRef(sub []byte) Bytes[L] {
	b.live()
	return b.derive(b.inner.SliceRef(sub))
}

// SplitOff splits the handle in place at byte offset at: the receiver
// retains [0, at), the returned handle denotes [at, Len()). Both share the
// allocation and keep the tag. Panics if at > Len().
func (b *Bytes[L]) SplitOff(at int) Bytes[L] {
	b.live()
	return b.derive(b.inner.SplitOff(at))
}

// SplitTo is the inverse of SplitOff: the receiver retains [at, Len()), the
// returned handle denotes [0, at). Panics if at > Len().
func (b *Bytes[L]) SplitTo(at int) Bytes[L] {
	b.live()
	return b.derive(b.inner.SplitTo(at))
}

// Truncate shrinks the view to at most n bytes. A no-op if n >= Len(). It
// never affects other handles over the same allocation: only the denoted
// range changes, never the bytes.
func (b *Bytes[L]) Truncate(n int) {
	b.live()
	b.inner.Truncate(n)
}

// Clear empties the view. Equivalent to Truncate(0).
func (b *Bytes[L]) Clear() {
	b.live()
	b.inner.Clear()
}

// Remaining returns the number of unconsumed bytes.
func (b Bytes[L]) Remaining() int {
	b.live()
	return b.inner.Remaining()
}

// Chunk returns the unconsumed bytes without copying, read-only.
func (b Bytes[L]) Chunk() []byte {
	b.live()
	return b.inner.Chunk()
}

// Advance consumes n bytes from the front of the view. Panics if n exceeds
// Remaining; it never clamps.
func (b *Bytes[L]) Advance(n int) {
	b.live()
	b.inner.Advance(n)
}

// Read drains the handle into p, advancing past the bytes read. Returns
// io.EOF once the view is empty, making *Bytes an io.Reader over the
// remaining range.
func (b *Bytes[L]) Read(p []byte) (int, error) {
	b.live()
	if b.inner.Len() == 0 {
		return 0, io.EOF
	}
	n := copy(p, b.inner.Data())
	b.inner.Advance(n)
	return n, nil
}
