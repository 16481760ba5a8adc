package data

import (
	"fmt"
	"strings"
)

// VirtualPathKind discriminates the closed set of virtual address shapes.
type VirtualPathKind int

const (
	// KindRoot is the unified namespace top `/`.
	KindRoot VirtualPathKind = iota
	// KindDrive addresses a bare volume root, e.g. `/C`.
	KindDrive
	// KindNested addresses a location inside a volume, e.g. `/C/Users/docs`.
	KindNested
)

func (k VirtualPathKind) String() string {
	switch k {
	case KindRoot:
		return "root"
	case KindDrive:
		return "drive"
	case KindNested:
		return "nested"
	default:
		return "unknown"
	}
}

// VirtualPath is an address in the unified namespace. It is a value type:
// construct through Root, Drive, Nested or ParseVirtualPath and treat as
// immutable. Navigation directives (`..`) are consumed during resolution and
// never appear as stored segments.
type VirtualPath struct {
	Kind     VirtualPathKind
	Letter   DriveLetter
	Segments []string
}

// Root returns the unified namespace top.
func Root() VirtualPath {
	return VirtualPath{Kind: KindRoot}
}

// Drive returns the virtual address of a bare volume root.
func Drive(letter DriveLetter) VirtualPath {
	return VirtualPath{Kind: KindDrive, Letter: letter}
}

// Nested returns the virtual address of a location inside a volume.
// Segment validation is the caller's job; ParseVirtualPath validates.
func Nested(letter DriveLetter, segments ...string) VirtualPath {
	return VirtualPath{Kind: KindNested, Letter: letter, Segments: segments}
}

// ParseVirtualPath parses the `/`-separated string form of a virtual address.
// The drive letter is canonicalized to uppercase; segment text keeps its
// case. Navigation tokens are rejected here: a stored path never contains
// `.` or `..`.
func ParseVirtualPath(raw string) (VirtualPath, error) {
	if raw == "/" {
		return Root(), nil
	}

	trimmed, ok := strings.CutPrefix(raw, "/")
	if !ok || trimmed == "" {
		return VirtualPath{}, fmt.Errorf("%w: %q", ErrInvalidPath, raw)
	}

	parts := strings.Split(trimmed, "/")

	letter, err := ParseDriveLetter(parts[0])
	if err != nil {
		return VirtualPath{}, err
	}

	if len(parts) == 1 {
		return Drive(letter), nil
	}

	segments := make([]string, 0, len(parts)-1)
	for _, seg := range parts[1:] {
		if seg == "" || seg == "." || seg == ".." {
			return VirtualPath{}, fmt.Errorf("%w: %q in %q", ErrInvalidSegment, seg, raw)
		}
		segments = append(segments, seg)
	}

	return Nested(letter, segments...), nil
}

// String renders the `/`-separated form: `/`, `/C`, `/C/Users/docs`.
func (p VirtualPath) String() string {
	switch p.Kind {
	case KindRoot:
		return "/"
	case KindDrive:
		return "/" + p.Letter.String()
	default:
		return "/" + p.Letter.String() + "/" + strings.Join(p.Segments, "/")
	}
}

// Equal compares two virtual addresses. Letters are stored uppercase, making
// the drive comparison case-insensitive; segments compare case-sensitively.
func (p VirtualPath) Equal(other VirtualPath) bool {
	if p.Kind != other.Kind || !p.Letter.Equal(other.Letter) {
		return false
	}

	if len(p.Segments) != len(other.Segments) {
		return false
	}

	for i, seg := range p.Segments {
		if seg != other.Segments[i] {
			return false
		}
	}

	return true
}

// IsRoot reports whether the address is the unified namespace top.
func (p VirtualPath) IsRoot() bool {
	return p.Kind == KindRoot
}

// Native maps the address onto its native form without validating drive
// existence; the translator validates before materializing.
func (p VirtualPath) Native() NativePath {
	switch p.Kind {
	case KindRoot:
		return Sentinel
	case KindDrive:
		return p.Letter.Root()
	default:
		return p.Letter.Root().Join(p.Segments...)
	}
}

// Base returns the final segment, the drive letter for a bare drive and `/`
// for the root.
func (p VirtualPath) Base() string {
	switch p.Kind {
	case KindRoot:
		return "/"
	case KindDrive:
		return p.Letter.String()
	default:
		return p.Segments[len(p.Segments)-1]
	}
}
