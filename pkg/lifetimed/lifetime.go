package lifetimed

// Lifetime is the constraint satisfied by lifetime tags. A tag is a zero-size
// type standing for the validity scope of borrowed memory; it carries no
// runtime value. Static is the only tag defined here; borrowing callers
// declare their own by embedding Borrowed.
type Lifetime interface {
	lifetime()
}

// Static is the unconstrained lifetime tag: valid for the entire remaining
// program execution. Handles built from owned or already-independent data
// carry it, and only Static-tagged handles can be converted back to the bare
// buffer type.
type Static struct{}

func (Static) lifetime() {}

// Borrowed is embedded by caller-declared lifetime tags:
//
//	type myScope struct{ lifetimed.Borrowed }
//
// Distinct tag types never unify, so handles borrowed under different scopes
// cannot be mixed, and none of them can pose as Static.
type Borrowed struct{}

func (Borrowed) lifetime() {}
