// Package lifetimed provides a byte-buffer handle that tracks the lifetime of
// borrowed memory it may point into.
//
// A plain shared buffer (pkg/sharedbytes) erases where its bytes came from:
// once caller-owned memory has been wrapped zero-copy, nothing stops a handle
// from being retained after that memory is gone. Bytes[L] closes that hole by
// carrying a lifetime tag L in its type. The tag has no runtime
// representation; it exists so the compiler can tell handles over borrowed
// memory apart from handles that own their storage.
//
// # Lifetime tags
//
// Static is the unconstrained tag: handles built from owned data
// (FromOwned, FromShared, FromReader) are Bytes[Static] and valid for the
// rest of the program. Code that borrows declares its own tag type by
// embedding Borrowed:
//
//	type requestScope struct{ lifetimed.Borrowed }
//
//	func handle(payload []byte) {
//		view := lifetimed.FromBorrowed[requestScope](payload)
//		// view, and everything sliced or split from it, is
//		// Bytes[requestScope] — it cannot be converted to the
//		// unconstrained form or mixed into Bytes[Static] values.
//	}
//
// Every operation that derives a new handle (Slice, SplitOff, Clone, the
// consuming iterator) preserves the tag, since derived handles only ever
// re-view the same storage and never extend its validity. IntoShared, the
// one exit back to the bare buffer type, accepts only Bytes[Static]; handing
// it a borrowed-tag value is a compile error.
//
// # The caller-asserted bridge
//
// FromBorrowed is the single deliberately unsound operation: it stores a
// reference to borrowed memory inside a buffer type that has no notion of
// borrowing. This is tolerable because the storage is immutable after
// construction (no aliasing-mutation hazard exists), and because every
// accessor and every derived value re-imposes the tag L, so the only hazard
// left is the borrowed memory being freed or reused while a handle still
// exists. The tag prevents the conversions that would let a handle escape
// into an unconstrained context, but Go's type system cannot see scope exit
// itself, so the temporal half of the contract remains caller-asserted:
// a Bytes[L] value must not be used after the memory behind its tag's scope
// is gone. Callers who want that checked at run time use a Region.
//
// # Regions
//
// Region[L] ties borrowed handles to an explicit scope with a run-time
// guard, the arena-style alternative for code that cannot rely on
// discipline alone:
//
//	type parseScope struct{ lifetimed.Borrowed }
//
//	r := lifetimed.NewRegion[parseScope]()
//	defer r.Close()
//	view := r.Bind(input)
//
// After Close, any access through view or a handle derived from it panics.
//
// # Contract violations
//
// Out-of-range slicing, splitting, or advancing, a non-subset SliceRef, and
// use of a region-bound handle after Close are programmer errors and panic.
// Tag misuse never reaches run time at all.
package lifetimed
