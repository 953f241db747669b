package names

import "sync"

var (
	rootOnce sync.Once
	root     Name

	emptyOnce sync.Once
	empty     Name
)

// Root returns the root name: the absolute zero-length name whose text form
// is ".".
//
// The value is built once, on first access, and is read-only thereafter.
func Root() Name {
	rootOnce.Do(func() {
		// "." satisfies every Name invariant, so the unchecked path is safe.
		root = Unchecked(".")
	})

	return root
}

// Empty returns the empty name: the zero-byte unqualified name.
//
// The value is built once, on first access, and is read-only thereafter.
func Empty() Name {
	emptyOnce.Do(func() {
		empty = Unchecked("")
	})

	return empty
}
