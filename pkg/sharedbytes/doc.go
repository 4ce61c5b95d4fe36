// Package sharedbytes implements a reference-counted, immutable byte buffer
// with copy-free slicing.
//
// A Buffer is a cheap handle: a window (offset and length) into a shared
// allocation. Slicing, splitting, and cursor-style consumption all produce or
// adjust windows; none of them copy bytes, and none of them affect what other
// handles over the same allocation observe.
//
// # Ownership model
//
// Every owning constructor (FromBytes, Copy, FromString, WithFree, Secure,
// Pool.Copy) pairs the allocation with an atomic reference count. Clone and
// the slicing operations increment it; Release decrements it. When the last
// handle releases, the allocation's release hook runs — returning pooled
// storage, wiping a secure allocation, or nothing at all for plain GC-managed
// buffers. Callers that never release a GC-managed buffer leak nothing: the
// garbage collector reclaims the allocation with the handles.
//
// Alias is the exception: it wraps caller-owned memory without taking
// ownership. The caller remains responsible for keeping that memory valid for
// as long as any handle derived from it is in use. The lifetime-checked layer
// in pkg/lifetimed builds on Alias.
//
// # Immutability and concurrency
//
// The bytes behind a Buffer are never modified after construction. The
// reference count is atomic, so distinct handles over one allocation may be
// cloned, read, and released from multiple goroutines without locking. A
// single Buffer value is not safe for concurrent use: the window-mutating
// operations (SplitOff, SplitTo, Truncate, Clear, Advance) require exclusive
// access to that one handle, exactly like any other Go value.
//
// # Contract violations
//
// Out-of-range offsets, non-subset SliceRef arguments, and release of an
// already-freed allocation are programmer errors and panic. They are never
// reported as recoverable errors and never clamped.
package sharedbytes
