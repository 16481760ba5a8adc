package data

import "fmt"

// DriveLetter identifies a native volume root by its single letter.
// The zero value is not a valid letter.
type DriveLetter byte

// ParseDriveLetter validates a single alphabetic character and canonicalizes
// it to uppercase. Whether a volume is actually mounted for the letter is a
// separate concern, checked lazily against the enumerator at use.
func ParseDriveLetter(s string) (DriveLetter, error) {
	if len(s) != 1 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDriveLetter, s)
	}

	c := s[0]
	switch {
	case c >= 'A' && c <= 'Z':
		return DriveLetter(c), nil
	case c >= 'a' && c <= 'z':
		return DriveLetter(c - 'a' + 'A'), nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidDriveLetter, s)
	}
}

// IsDriveToken reports whether the token has drive-letter syntax.
// Drive syntax takes priority over same-length directory names, so callers
// must not fall back to relative interpretation when this returns true.
func IsDriveToken(s string) bool {
	if len(s) != 1 {
		return false
	}
	c := s[0]
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}

func (d DriveLetter) String() string {
	return string(rune(d))
}

// Root returns the native volume root for this letter, e.g. `C:\`.
func (d DriveLetter) Root() NativePath {
	return NativePath(string(rune(d)) + `:\`)
}

// Equal compares two letters; both are stored uppercase so this is a plain
// byte comparison, kept as a method to mirror VirtualPath.Equal.
func (d DriveLetter) Equal(other DriveLetter) bool {
	return d == other
}
