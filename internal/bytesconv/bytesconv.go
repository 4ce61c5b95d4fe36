// Package bytesconv provides zero-copy conversions between strings and byte
// slices.
//
// Both conversions return a value that shares memory with the input. They are
// kept internal so the only unsafe code in this module stays in one place,
// behind callers that document their own aliasing contracts.
package bytesconv

import "unsafe"

// Bytes converts s to a byte slice without allocation.
//
// WARNING: the returned slice references the string's backing array. Strings
// are immutable in Go, so the slice must be treated as read-only; writing
// through it is undefined behavior.
func Bytes(s string) []byte {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Slice(unsafe.StringData(s), len(s))
}

// String converts b to a string without allocation.
//
// WARNING: the returned string references b's backing array. It becomes
// invalid if b is modified afterwards; only use it when b is known to stay
// unchanged for the life of the string.
func String(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(&b[0], len(b))
}
