package names

import "fmt"

// IDNAError indicates that a name could not be mapped to an
// ASCII-compatible encoding.
type IDNAError struct {
	// Input is the name that failed to map.
	Input string

	// Err is the diagnostic reported by the IDNA codec.
	Err error
}

func (e IDNAError) Error() string {
	return fmt.Sprintf("unable to map '%s' to an ASCII-compatible encoding: %s", e.Input, e.Err)
}

// Unwrap returns the underlying codec diagnostic.
func (e IDNAError) Unwrap() error {
	return e.Err
}

// InvalidUTF8Error indicates that byte input was not valid UTF-8 text.
type InvalidUTF8Error struct {
	// Input is the offending byte sequence.
	Input []byte
}

func (e InvalidUTF8Error) Error() string {
	return "name is not valid UTF-8"
}

// NameTooLargeError indicates that a name exceeded 255 bytes.
type NameTooLargeError struct {
	// Name is the offending name.
	Name string
}

func (e NameTooLargeError) Error() string {
	return fmt.Sprintf("name '%s' is larger than %d bytes", e.Name, maxNameLength)
}

// LabelTooLongError indicates that a single label exceeded 63 bytes.
type LabelTooLongError struct {
	// Label is the offending label.
	Label string
}

func (e LabelTooLongError) Error() string {
	return fmt.Sprintf("label '%s' is larger than %d bytes", e.Label, maxLabelLength)
}

// EmptyLabelError indicates that a non-final label was empty.
type EmptyLabelError struct {
	// Position is the zero-based index of the offending label.
	Position int
}

func (e EmptyLabelError) Error() string {
	return fmt.Sprintf("empty label at position %d", e.Position)
}
