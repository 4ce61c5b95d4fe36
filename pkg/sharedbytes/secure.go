package sharedbytes

import "github.com/awnumar/memguard"

// Secure copies p into a memguard-locked allocation: the memory is protected
// from swapping, guarded against overflows, made read-only, and wiped when
// the last handle over it is released.
//
// memguard zeroes the source slice as part of moving it into protected
// memory, so callers needing p afterwards must pass a copy.
//
// After the final Release the plaintext is gone; using the raw slice
// previously returned by Data past that point is a contract violation, the
// same as for any released buffer.
func Secure(p []byte) Buffer {
	if len(p) == 0 {
		return Buffer{}
	}
	locked := memguard.NewBufferFromBytes(p)
	locked.Freeze()
	return WithFree(locked.Bytes(), func([]byte) {
		locked.Destroy()
	})
}
