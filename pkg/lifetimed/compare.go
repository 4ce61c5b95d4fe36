package lifetimed

import (
	"bytes"

	"github.com/vorot93/lifetimed-bytes/pkg/sharedbytes"
)

// Cross-tag comparison is deliberately supported: comparing only reads both
// operands while the caller holds them live, and never extends either tag's
// effective lifetime. Region-bound operands are still liveness-checked.

// Equal reports whether two handles denote the same byte content, regardless
// of their lifetime tags.
func Equal[A, B Lifetime](x Bytes[A], y Bytes[B]) bool {
	x.live()
	y.live()
	return x.inner.Equal(y.inner)
}

// Compare orders two handles lexicographically over their byte content,
// regardless of their lifetime tags, returning -1, 0, or +1.
func Compare[A, B Lifetime](x Bytes[A], y Bytes[B]) int {
	x.live()
	y.live()
	return x.inner.Compare(y.inner)
}

// EqualTo reports whether the handle's content equals rhs, for any byte-view
// right-hand side: a raw slice, a string, or any named type of either kind.
// Fixed-size arrays compare via arr[:].
func EqualTo[L Lifetime, T ~[]byte | ~string](b Bytes[L], rhs T) bool {
	b.live()
	return bytes.Equal(b.inner.Data(), []byte(rhs))
}

// CompareTo orders the handle's content against rhs lexicographically,
// returning -1, 0, or +1, for the same right-hand-side types as EqualTo.
func CompareTo[L Lifetime, T ~[]byte | ~string](b Bytes[L], rhs T) int {
	b.live()
	return bytes.Compare(b.inner.Data(), []byte(rhs))
}

// Equal reports whether both handles denote the same byte content. For
// operands with different tags use the package-level Equal.
func (b Bytes[L]) Equal(o Bytes[L]) bool {
	b.live()
	o.live()
	return b.inner.Equal(o.inner)
}

// Compare orders both handles lexicographically, returning -1, 0, or +1.
func (b Bytes[L]) Compare(o Bytes[L]) int {
	b.live()
	o.live()
	return b.inner.Compare(o.inner)
}

// EqualShared reports whether the handle's content equals the bare shared
// buffer's.
func (b Bytes[L]) EqualShared(o sharedbytes.Buffer) bool {
	b.live()
	return b.inner.Equal(o)
}

// CompareShared orders the handle's content against the bare shared
// buffer's, returning -1, 0, or +1.
func (b Bytes[L]) CompareShared(o sharedbytes.Buffer) int {
	b.live()
	return b.inner.Compare(o)
}
