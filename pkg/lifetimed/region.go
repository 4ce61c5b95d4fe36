package lifetimed

import (
	"sync/atomic"

	"github.com/vorot93/lifetimed-bytes/pkg/sharedbytes"

	"github.com/vorot93/lifetimed-bytes/internal/bytesconv"
)

// regionState is shared by a region and every handle bound to it. A nil
// *regionState means the handle is unguarded (owned or caller-asserted).
type regionState struct {
	closed atomic.Bool
}

func (g *regionState) check() {
	if g != nil && g.closed.Load() {
		panic("lifetimed: use of bytes after region close")
	}
}

// Region ties borrowed handles to an explicit scope. Bind produces zero-copy
// handles over caller-owned memory; Close invalidates all of them at once.
// It is the run-time-checked counterpart to the purely type-level
// FromBorrowed, for code that wants the borrow contract enforced rather
// than asserted.
//
// A Region may be shared across goroutines; Close is safe to race with
// accesses (the guard is atomic) and is idempotent.
type Region[L Lifetime] struct {
	state regionState
}

// NewRegion creates an open region for tag L.
func NewRegion[L Lifetime]() *Region[L] {
	return &Region[L]{}
}

// Bind wraps p without copying and ties the handle to the region. The caller
// must keep p valid until Close. Panics if the region is already closed.
func (r *Region[L]) Bind(p []byte) Bytes[L] {
	r.state.check()
	return Bytes[L]{inner: sharedbytes.Alias(p), guard: &r.state}
}

// BindString is Bind over the bytes of s, without copying.
func (r *Region[L]) BindString(s string) Bytes[L] {
	return r.Bind(bytesconv.Bytes(s))
}

// Close marks the region's memory as gone. Every handle bound to the region,
// including derived slices, splits, clones, and iterators, panics on any
// subsequent access. Close is idempotent.
func (r *Region[L]) Close() {
	r.state.closed.Store(true)
}

// Closed reports whether the region has been closed.
func (r *Region[L]) Closed() bool {
	return r.state.closed.Load()
}
