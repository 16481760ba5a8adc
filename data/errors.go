package data

import "errors"

// Sentinel errors surfaced by the translation core. Use errors.Is to match;
// call sites wrap them with fmt.Errorf("%w: ...") for context.
var (
	// Addressing errors
	ErrDriveNotFound      = errors.New("unidrive: drive not found")
	ErrInvalidPath        = errors.New("unidrive: invalid path")
	ErrInvalidDriveLetter = errors.New("unidrive: invalid drive letter")
	ErrInvalidSegment     = errors.New("unidrive: invalid path segment")

	// Virtual-root errors
	ErrRootVirtual  = errors.New("unidrive: root is virtual")
	ErrNotDirectory = errors.New("unidrive: not a directory")

	// Entry errors
	ErrNotExist = errors.New("unidrive: entry does not exist")

	// Session errors
	ErrSessionClosed = errors.New("unidrive: session closed")
)
