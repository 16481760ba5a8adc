package data

import (
	"fmt"
	"path"
	"strings"
)

// NativePath is a volume-rooted path on the host, always backslash-separated
// regardless of the build platform: the namespace models drive-lettered
// volumes, and a fixed separator keeps the translator deterministic on every
// host. The distinguished Sentinel value means "no concrete drive selected".
type NativePath string

// Sentinel is the virtual-root placeholder. It is not addressable: any file
// operation attempted against it fails with ErrRootVirtual.
const Sentinel = NativePath("/")

// Separator joins native path components.
const Separator = `\`

// IsSentinel reports whether the path is the virtual-root placeholder.
func (n NativePath) IsSentinel() bool {
	return n == Sentinel
}

// IsDriveRoot reports whether the path is a bare volume root such as `C:\`.
func (n NativePath) IsDriveRoot() bool {
	return len(n) == 3 && n[1] == ':' && n[2] == '\\'
}

// Drive returns the volume letter of a concrete native path.
func (n NativePath) Drive() (DriveLetter, error) {
	if len(n) < 2 || n[1] != ':' {
		return 0, fmt.Errorf("%w: no drive prefix in %q", ErrInvalidPath, string(n))
	}
	return ParseDriveLetter(string(n[0]))
}

// Join appends path components below the current path. Components are joined
// verbatim; normalization is the caller's concern.
func (n NativePath) Join(parts ...string) NativePath {
	if len(parts) == 0 {
		return n
	}

	joined := string(n)
	if !strings.HasSuffix(joined, Separator) {
		joined += Separator
	}

	return NativePath(joined + strings.Join(parts, Separator))
}

// Parent strips the last path component. The parent of a drive root is the
// drive root itself; crossing from a drive root to the Sentinel is a
// navigation decision that belongs to the translator, not to this type.
func (n NativePath) Parent() NativePath {
	if n.IsSentinel() || n.IsDriveRoot() {
		return n
	}

	idx := strings.LastIndex(string(n), Separator)
	if idx < 0 {
		return n
	}

	parent := n[:idx]
	if len(parent) == 2 && parent[1] == ':' {
		return parent + NativePath(Separator)
	}

	return parent
}

// Normalize collapses embedded `.` and `..` components, clamping at the
// volume root: normalization never escapes the drive the path is rooted on.
func (n NativePath) Normalize() (NativePath, error) {
	if n.IsSentinel() {
		return n, nil
	}

	drive, err := n.Drive()
	if err != nil {
		return "", err
	}

	rest := strings.TrimPrefix(string(n[2:]), Separator)
	cleaned := path.Clean(strings.ReplaceAll(rest, Separator, "/"))

	// path.Clean keeps leading ".." on relative inputs; those would climb
	// above the volume root and are clamped away.
	for cleaned == ".." || strings.HasPrefix(cleaned, "../") {
		cleaned = strings.TrimPrefix(strings.TrimPrefix(cleaned, ".."), "/")
		if cleaned == "" {
			cleaned = "."
		}
	}

	if cleaned == "." || cleaned == "" {
		return drive.Root(), nil
	}

	return drive.Root() + NativePath(strings.ReplaceAll(cleaned, "/", Separator)), nil
}

// Segments returns the path components below the volume root.
// The Sentinel and bare drive roots have no segments.
func (n NativePath) Segments() []string {
	if n.IsSentinel() || n.IsDriveRoot() || len(n) < 3 {
		return nil
	}

	rest := strings.TrimPrefix(string(n[2:]), Separator)
	if rest == "" {
		return nil
	}

	return strings.Split(rest, Separator)
}

func (n NativePath) String() string {
	return string(n)
}
