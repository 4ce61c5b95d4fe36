package sharedbytes

import (
	"bytes"
	"testing"
)

func TestSecureRoundTrip(t *testing.T) {
	t.Parallel()

	// memguard wipes the source slice, so keep a separate copy for comparison.
	secret := []byte("super-secret")
	expected := []byte("super-secret")

	b := Secure(secret)
	defer b.Release()

	if !bytes.Equal(b.Data(), expected) {
		t.Errorf("Data() = %q, want %q", b.Data(), expected)
	}
}

func TestSecureWipesSource(t *testing.T) {
	t.Parallel()

	secret := []byte("wipe-me")
	b := Secure(secret)
	defer b.Release()

	if !bytes.Equal(secret, make([]byte, len(secret))) {
		t.Error("source slice must be zeroed after Secure")
	}
}

func TestSecureSurvivesClones(t *testing.T) {
	t.Parallel()

	expected := []byte("shared-secret")
	b := Secure([]byte("shared-secret"))

	c := b.Clone()
	s := b.Slice(0, 6)

	b.Release()

	// Remaining handles still read the protected allocation.
	if !bytes.Equal(c.Data(), expected) {
		t.Errorf("clone after sibling release = %q, want %q", c.Data(), expected)
	}
	if s.String() != "shared" {
		t.Errorf("slice after sibling release = %q, want %q", s.String(), "shared")
	}

	s.Release()
	c.Release()
	// Final release destroyed the locked allocation; nothing left to check
	// without touching freed memory.
}

func TestSecureEmpty(t *testing.T) {
	t.Parallel()

	b := Secure(nil)
	if !b.IsEmpty() {
		t.Error("Secure(nil) must be empty")
	}
	b.Release()
}
