package lifetimed_test

import (
	"fmt"

	"github.com/vorot93/lifetimed-bytes/pkg/lifetimed"
)

func ExampleFromOwned() {
	b := lifetimed.FromOwned([]byte("hello world"))

	fmt.Println(b.Len())
	fmt.Println(b.SliceFrom(6).String())
	// Output:
	// 11
	// world
}

func ExampleBytes_SplitOff() {
	b := lifetimed.FromOwned([]byte("header|body"))
	body := b.SplitOff(7)

	fmt.Println(b.String())
	fmt.Println(body.String())
	// Output:
	// header|
	// body
}

// A borrowing caller declares its own lifetime tag; the handle and everything
// derived from it stay tagged and cannot be converted to the unconstrained
// form.
func ExampleFromBorrowed() {
	type callScope struct{ lifetimed.Borrowed }

	payload := []byte("caller-owned")
	view := lifetimed.FromBorrowed[callScope](payload)

	fmt.Println(view.SliceTo(6).String())
	fmt.Println(lifetimed.EqualTo(view, "caller-owned"))
	// Output:
	// caller
	// true
}

func ExampleRegion() {
	type parseScope struct{ lifetimed.Borrowed }

	input := []byte("transient input")
	r := lifetimed.NewRegion[parseScope]()
	view := r.Bind(input)

	fmt.Println(view.String())

	r.Close()
	func() {
		defer func() { fmt.Println("recovered:", recover()) }()
		_ = view.Data()
	}()
	// Output:
	// transient input
	// recovered: lifetimed: use of bytes after region close
}

func ExampleIntoShared() {
	b := lifetimed.FromOwned([]byte("independent"))
	shared := lifetimed.IntoShared(b)

	fmt.Println(shared.Len())
	// Output:
	// 11
}
