// This program must compile. Handles built from owned data carry the Static
// tag, so the unconstrained conversion is available to them.
package main

import (
	"fmt"

	"github.com/vorot93/lifetimed-bytes/pkg/lifetimed"
)

func main() {
	owned := lifetimed.FromOwned([]byte("independent storage"))
	shared := lifetimed.IntoShared(owned)

	fmt.Println(shared.Len())
}
