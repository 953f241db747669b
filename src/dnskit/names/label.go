package names

import (
	"fmt"
	"strings"
)

// Label is one dot-delimited segment of a Name.
//
// A Label is a view into the backing storage of the Name it was sliced
// from, and is only produced by Name.Labels. Labels compare byte-wise.
type Label struct {
	value string
}

// ASCII returns the label's ASCII-compatible form.
func (l Label) ASCII() string {
	return l.value
}

// Compare compares two labels byte-wise. It returns -1 if l sorts before o,
// +1 if l sorts after o, and 0 if they are equal.
func (l Label) Compare(o Label) int {
	return strings.Compare(l.value, o.value)
}

// String returns a human-readable Unicode representation of the label.
func (l Label) String() string {
	return toUnicode(l.value)
}

// GoString returns the label in its "Label(...)" debugging form, rendered by
// the %#v formatting verb.
func (l Label) GoString() string {
	return fmt.Sprintf("Label(%s)", toUnicode(l.value))
}
