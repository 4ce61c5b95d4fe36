// This program must NOT compile. It constructs a handle over borrowed memory
// under a local tag and then tries to smuggle it out through the
// unconstrained conversion. The type checker has to reject both escapes.
package main

import (
	"fmt"

	"github.com/vorot93/lifetimed-bytes/pkg/lifetimed"
)

type localScope struct{ lifetimed.Borrowed }

func main() {
	local := []byte("does not outlive main")
	view := lifetimed.FromBorrowed[localScope](local)

	// Escape through conversion: Bytes[localScope] is not Bytes[Static].
	shared := lifetimed.IntoShared(view)

	// Escape through assignment: distinct tags never unify.
	var retained lifetimed.Bytes[lifetimed.Static] = view

	fmt.Println(shared.Len(), retained.Len())
}
