package bytesconv

import (
	"testing"
)

func TestBytes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want []byte
	}{
		{name: "plain text", in: "hello", want: []byte("hello")},
		{name: "empty string", in: "", want: nil},
		{name: "binary content", in: "\x00\xff\x10", want: []byte{0x00, 0xff, 0x10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Bytes(tt.in)
			if string(got) != string(tt.want) {
				t.Errorf("Bytes(%q) = %v, want %v", tt.in, got, tt.want)
			}
			if len(got) != len(tt.in) {
				t.Errorf("Bytes(%q) length = %d, want %d", tt.in, len(got), len(tt.in))
			}
		})
	}
}

func TestString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   []byte
		want string
	}{
		{name: "plain text", in: []byte("hello"), want: "hello"},
		{name: "nil slice", in: nil, want: ""},
		{name: "empty slice", in: []byte{}, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := String(tt.in); got != tt.want {
				t.Errorf("String(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestRoundTripSharesMemory(t *testing.T) {
	t.Parallel()

	src := []byte("shared backing")
	s := String(src)
	back := Bytes(s)

	if &back[0] != &src[0] {
		t.Error("round trip allocated a new backing array")
	}
}
