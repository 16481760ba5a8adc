// Package drives queries the host for its set of mounted volume roots.
//
// Enumeration is always a direct query of the current volume table: volumes
// appear and disappear (removable media), so results are never cached and a
// failed query degrades to "not mounted" instead of failing the caller.
package drives

import (
	"context"
	"sort"

	"github.com/deotya/unidrive/data"
)

// DriveInfo describes one mounted volume root.
type DriveInfo struct {
	// Letter is the volume's drive letter.
	Letter data.DriveLetter

	// Root is the native volume root, e.g. `C:\`.
	Root data.NativePath

	// TotalSpace and FreeSpace are best-effort byte counts; zero when the
	// query failed or the platform does not report them.
	TotalSpace uint64
	FreeSpace  uint64

	// Removable marks removable media (volume set may change under us).
	Removable bool
}

// Enumerator reports the currently mounted volume roots.
type Enumerator interface {
	// List returns every mounted volume, sorted by letter.
	List(ctx context.Context) ([]DriveInfo, error)

	// Exists reports whether a volume is currently mounted for the letter.
	// Unreachable or permission-denied queries report false, never an error.
	Exists(ctx context.Context, letter data.DriveLetter) bool
}

// System returns the host's volume-table enumerator.
func System() Enumerator {
	return systemEnumerator{}
}

type systemEnumerator struct{}

func (systemEnumerator) List(ctx context.Context) ([]DriveInfo, error) {
	infos, err := listSystemDrives()
	if err != nil {
		return nil, err
	}

	sort.Slice(infos, func(i, j int) bool {
		return infos[i].Letter < infos[j].Letter
	})

	return infos, nil
}

func (systemEnumerator) Exists(ctx context.Context, letter data.DriveLetter) bool {
	return systemDriveExists(letter)
}
