package names

import (
	"strings"
	"unicode/utf8"
)

// maxNameLength and maxLabelLength are the RFC 1035 size limits for a
// complete name and for a single label. They are enforced here and nowhere
// else; the IDNA profile is configured not to duplicate them.
const (
	maxNameLength  = 255
	maxLabelLength = 63
)

// Name is a validated, ASCII-compatible DNS name, composed of dot-separated
// labels.
//
// A Name built by Parse, ParseBytes or ParseASCII contains only ASCII bytes,
// is at most 255 bytes long, and contains no label longer than 63 bytes and
// no empty label other than the trailing one that marks an absolute name.
//
// Names are immutable and may be shared freely between goroutines. Two names
// are equal iff their underlying bytes are identical; this is a raw byte
// comparison, not the case-insensitive comparison used when matching names
// in DNS messages.
type Name struct {
	value string
}

// Parse parses a Unicode domain name.
//
// The name is first mapped to its ASCII-compatible encoding (IDNA2008,
// non-transitional), then validated against the RFC 1035 size and
// empty-label rules. It returns an IDNAError if the mapping fails, or a
// NameTooLargeError, LabelTooLongError or EmptyLabelError if validation
// fails.
func Parse(n string) (Name, error) {
	a, err := toASCII(n)
	if err != nil {
		return Name{}, IDNAError{Input: n, Err: err}
	}

	return validateAndWrap(a)
}

// MustParse parses a Unicode domain name.
// It panics if n is invalid.
func MustParse(n string) Name {
	v, err := Parse(n)
	if err != nil {
		panic(err)
	}
	return v
}

// ParseBytes parses a domain name from its byte form.
//
// The bytes must be valid UTF-8. They are not assumed to be ASCII already,
// and pass through the same Unicode mapping as Parse.
func ParseBytes(n []byte) (Name, error) {
	if !utf8.Valid(n) {
		return Name{}, InvalidUTF8Error{Input: n}
	}

	return Parse(string(n))
}

// ParseASCII parses a domain name that is already in ASCII form.
//
// It skips the Unicode mapping performed by Parse, but still enforces the
// structural rules. The caller is responsible for ensuring that n contains
// only ASCII bytes; passing non-ASCII text is a logic error that produces a
// Name whose rendering behavior is undefined.
func ParseASCII(n string) (Name, error) {
	return validateAndWrap(n)
}

// Unchecked wraps n as a Name without any validation. It cannot fail.
//
// It exists so that callers holding text already known to satisfy every Name
// invariant (for example, the ASCII form of a previously parsed Name) can
// re-wrap it without paying for validation. The caller is responsible for
// the ASCII, length and empty-label invariants; violating them silently
// breaks every consumer of the resulting Name. Use Parse or ParseASCII for
// untrusted input.
func Unchecked(n string) Name {
	return Name{value: n}
}

// validateAndWrap is the single authority for the structural rules of a
// name. Every checked constructor funnels through it.
func validateAndWrap(n string) (Name, error) {
	if len(n) > maxNameLength {
		return Name{}, NameTooLargeError{Name: n}
	}

	// "" is the empty name and "." is the root name. Both are valid; the
	// lone empty segment of "." is the absolute marker, not an empty label.
	if n == "" || n == "." {
		return Name{value: n}, nil
	}

	rest := n
	for pos := 0; ; pos++ {
		i := strings.IndexByte(rest, '.')
		if i == -1 {
			if len(rest) > maxLabelLength {
				return Name{}, LabelTooLongError{Label: rest}
			}
			return Name{value: n}, nil
		}

		label := rest[:i]
		if len(label) > maxLabelLength {
			return Name{}, LabelTooLongError{Label: label}
		}
		if label == "" {
			return Name{}, EmptyLabelError{Position: pos}
		}

		rest = rest[i+1:]
		if rest == "" {
			// A trailing separator marks an absolute name.
			return Name{value: n}, nil
		}
	}
}

// IsAbsolute returns true if the name is fully qualified, i.e. it ends with
// the label separator.
func (n Name) IsAbsolute() bool {
	return n.value != "" && n.value[len(n.value)-1] == '.'
}

// Labels returns the labels that form this name, in left-to-right order.
//
// An absolute name yields a trailing empty label. The returned labels are
// views into the name's backing storage; a fresh slice is built on each
// call.
func (n Name) Labels() []Label {
	s := n.value
	var labels []Label

	for {
		i := strings.IndexByte(s, '.')
		if i == -1 {
			return append(labels, Label{value: s})
		}

		labels = append(labels, Label{value: s[:i]})
		s = s[i+1:]
	}
}

// ASCII returns the name's ASCII-compatible form.
func (n Name) ASCII() string {
	return n.value
}

// Bytes returns a copy of the name's backing bytes.
func (n Name) Bytes() []byte {
	return []byte(n.value)
}

// Compare compares two names byte-wise. It returns -1 if n sorts before o,
// +1 if n sorts after o, and 0 if they are equal.
func (n Name) Compare(o Name) int {
	return strings.Compare(n.value, o.value)
}

// String returns a human-readable Unicode representation of the name.
func (n Name) String() string {
	return toUnicode(n.value)
}
