package names

import "golang.org/x/net/idna"

// profile is the IDNA codec used to map Unicode names to their
// ASCII-compatible encoding and back.
//
// Hyphen placement checks, STD3 ASCII rules and transitional (IDNA2003)
// mappings are disabled. Length verification is disabled because
// validateAndWrap owns the 63/255-byte limits; the codec must not enforce
// them as well.
var profile = idna.New(
	idna.MapForLookup(),
	idna.CheckHyphens(false),
	idna.Transitional(false),
	idna.StrictDomainName(false),
	idna.VerifyDNSLength(false),
)

// toASCII maps a Unicode domain name to its ASCII-compatible encoding.
func toASCII(n string) (string, error) {
	return profile.ToASCII(n)
}

// toUnicode renders an ASCII-form domain name as Unicode text for display.
//
// It assumes n is ASCII, which every checked constructor establishes, and
// never fails: a name that cannot be decoded is rendered in its ASCII form.
func toUnicode(n string) string {
	u, err := profile.ToUnicode(n)
	if err != nil {
		return n
	}
	return u
}
